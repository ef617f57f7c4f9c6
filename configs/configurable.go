package configs

// Configurable is implemented by values resolved from config files.
// ConfigExpr names the CUE path the value is read from.
type Configurable interface {
	ConfigExpr() string
}
