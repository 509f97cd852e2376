package http

// LandsRequest is the JSON body accepted by POST /v1/lands. Symbol keys may be
// color codes, color names or land names.
type LandsRequest struct {
	TotalLands int                     `json:"total_lands"`
	Symbols    map[string]SymbolCounts `json:"symbols"`
}

type SymbolCounts struct {
	Single int `json:"single"`
	Double int `json:"double"`
}

// LandsResponse is the JSON shape returned by POST /v1/lands.
type LandsResponse struct {
	Lands        []LandResponse `json:"lands"`
	TotalLands   int            `json:"total_lands"`
	TotalSymbols float64        `json:"total_symbols"`
	Meta         MetaResp       `json:"meta"`
}

type LandResponse struct {
	Color  string  `json:"color"`
	Land   string  `json:"land"`
	Weight float64 `json:"weight"`
	Count  int     `json:"count"`
}

type MetaResp struct {
	RequestID string `json:"request_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
