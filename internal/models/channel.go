package models

import "time"

// ChannelPhase is the state of a side channel request cycle.
type ChannelPhase string

const (
	ChannelIdle    ChannelPhase = "idle"
	ChannelLoading ChannelPhase = "loading"
	ChannelReady   ChannelPhase = "ready"
	ChannelFailed  ChannelPhase = "failed"
)

// ChannelState is the observable state of a side channel.
type ChannelState[T any] struct {
	Phase     ChannelPhase `json:"phase"`
	Value     *T           `json:"value,omitempty"`
	Error     *ErrorInfo   `json:"error,omitempty"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Weather is the current conditions at a coordinate.
type Weather struct {
	Coordinate   Coordinate `json:"coordinate"`
	LocationName string     `json:"location_name,omitempty"`
	Temperature  float64    `json:"temperature"`
	FeelsLike    float64    `json:"feels_like"`
	Humidity     int        `json:"humidity"`
	WindSpeed    float64    `json:"wind_speed"`
	Description  string     `json:"description"`
	Icon         string     `json:"icon"`
}

// WeatherRequest is the input of a weather lookup.
type WeatherRequest struct {
	Coordinate   Coordinate
	LocationName string
}

// Translation is the result of a text translation.
type Translation struct {
	Text           string `json:"text"`
	SourceLang     string `json:"source_lang"`
	TargetLang     string `json:"target_lang"`
	TranslatedText string `json:"translated_text"`
}

// TranslationRequest is the input of a translation.
type TranslationRequest struct {
	Text       string
	SourceLang string
	TargetLang string
}
