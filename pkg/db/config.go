package db

// Config carries the connection settings for the durable store. Type selects
// the dialect (postgres in deployment, sqlite for local runs); Name doubles
// as the sqlite file path.
type Config struct {
	Type     string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string

	// Pool limits; zero values leave the driver defaults in place.
	// Lifetimes are in seconds.
	MaxIdleConn     int
	MaxOpenConn     int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}
