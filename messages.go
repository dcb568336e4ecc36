package ui

// Messages pushed to interface subscribers over the WebSocket channel.

type ScreenMessage struct {
	Type       string `json:"type"`
	Screen     string `json:"screen"`
	Markup     string `json:"markup"`
	ServerTime int64  `json:"serverTime"`
}

type InspectorMessage struct {
	Type     string          `json:"type"`
	Object   InspectorObject `json:"object"`
	Category string          `json:"category"`
}

type FilterMessage struct {
	Type  string      `json:"type"`
	State FilterState `json:"state"`
}
