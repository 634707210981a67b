package export

// Config selects which artifacts to write and where.
type Config struct {
	Dir      string `json:"dir"`
	CSV      bool   `json:"csv"`
	JSON     bool   `json:"json"`
	Plots    bool   `json:"plots"`
	Profiles bool   `json:"profiles"`
}

// SetDefaults enables the tabular artifacts in ./outputs.
func (c *Config) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "outputs"
	}
	if !c.CSV && !c.JSON && !c.Plots && !c.Profiles {
		c.CSV = true
		c.JSON = true
		c.Plots = true
	}
}
