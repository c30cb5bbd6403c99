package dtos

import "time"

// METAR is one element of aviationweather.gov /metar?format=json
type METAR struct {
	ICAOId     string  `json:"icaoId"`
	ReportTime string  `json:"reportTime"`
	Temp       float64 `json:"temp"`
	Dewp       float64 `json:"dewp"`
	Wdir       any     `json:"wdir"` // number, or "VRB"
	Wspd       float64 `json:"wspd"`
	Wgst       float64 `json:"wgst,omitempty"`
	Visib      any     `json:"visib"` // number, or "10+"
	Altim      float64 `json:"altim"`
	RawOb      string  `json:"rawOb"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	Elev       float64 `json:"elev"`
	Name       string  `json:"name"`
	FltCat     string  `json:"fltCat"`
}

// AirportInfo is one element of aviationweather.gov /airport?format=json
type AirportInfo struct {
	ICAOId  string  `json:"icaoId"`
	IATAId  string  `json:"iataId"`
	Name    string  `json:"name"`
	State   string  `json:"state"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Elev    float64 `json:"elev"`
	Type    string  `json:"type"`
}

// WeatherBriefing combines airport metadata and the latest METAR
type WeatherBriefing struct {
	ICAO      string       `json:"icao"`
	Airport   *AirportInfo `json:"airport"`
	METAR     *METAR       `json:"metar"`
	FetchedAt time.Time    `json:"fetched_at"`
	Cached    bool         `json:"cached"`
}
