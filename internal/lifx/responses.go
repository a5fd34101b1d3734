package lifx

type LightColor struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Kelvin     int     `json:"kelvin"`
}

type LightGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type LightProduct struct {
	Name         string `json:"name"`
	Identifier   string `json:"identifier"`
	Company      string `json:"company"`
	Capabilities struct {
		HasColor             bool `json:"has_color"`
		HasVariableColorTemp bool `json:"has_variable_color_temp"`
		MinKelvin            int  `json:"min_kelvin"`
		MaxKelvin            int  `json:"max_kelvin"`
	} `json:"capabilities"`
}

// a light as returned by GET /lights/{selector}
type Light struct {
	ID         string       `json:"id"`
	UUID       string       `json:"uuid"`
	Label      string       `json:"label"`
	Connected  bool         `json:"connected"`
	Power      string       `json:"power"`
	Color      LightColor   `json:"color"`
	Brightness float64      `json:"brightness"`
	Group      LightGroup   `json:"group"`
	Location   LightGroup   `json:"location"`
	Product    LightProduct `json:"product"`
}

type Result struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Status string `json:"status"`
}

// the envelope returned by state changing calls
type Results struct {
	Results []Result `json:"results"`
}

type StateParams struct {
	Power      string   `json:"power,omitempty"`
	Color      string   `json:"color,omitempty"`
	Brightness *float64 `json:"brightness,omitempty"`
	Duration   float64  `json:"duration"`
}

type ToggleParams struct {
	Duration float64 `json:"duration,omitempty"`
}

// parameters shared by the breathe and pulse effects, peak is only used by breathe
type EffectParams struct {
	Color     string   `json:"color"`
	FromColor string   `json:"from_color,omitempty"`
	Period    float64  `json:"period,omitempty"`
	Cycles    float64  `json:"cycles,omitempty"`
	Persist   bool     `json:"persist"`
	PowerOn   bool     `json:"power_on"`
	Peak      *float64 `json:"peak,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}
