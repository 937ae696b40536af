package metrics

// Config controls whether the engine's runtime counters are sampled and,
// if so, whether samples are also pushed to an InfluxDB v2 bucket. It
// intentionally keeps only the v2 write API fields: there is no prior
// deployment relying on the v1 endpoint/database/username/password shape
// for this tool, so there is nothing to stay compatible with.
type Config struct {
	Enabled        bool   `toml:",omitempty"`
	SampleInterval string `toml:",omitempty"` // parsed with time.ParseDuration

	EnableInfluxDB   bool   `toml:",omitempty"`
	InfluxDBEndpoint string `toml:",omitempty"`
	InfluxDBToken    string `toml:",omitempty"`
	InfluxDBBucket   string `toml:",omitempty"`
	InfluxDBOrg      string `toml:",omitempty"`
	InfluxDBTags     string `toml:",omitempty"` // "k=v,k2=v2"
}

// DefaultConfig matches the engine running with metrics collection off.
var DefaultConfig = Config{
	Enabled:        false,
	SampleInterval: "10s",
	EnableInfluxDB: false,
	InfluxDBBucket: "kazuka",
	InfluxDBOrg:    "kazuka",
	InfluxDBTags:   "host=localhost",
}
