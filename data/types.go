package data

type PairLast struct {
	Ask       float64 `json:"ask"`
	Bid       float64 `json:"bid"`
	Exchange  int     `json:"exchange"`
	Timestamp int64   `json:"timestamp"`
}

type PairQuote struct {
	Last   PairLast `json:"last"`
	Status string   `json:"status"`
	Symbol string   `json:"symbol"`
}

type PairAggsResult struct {
	Close  float64 `json:"c"`
	High   float64 `json:"h"`
	Low    float64 `json:"l"`
	Open   float64 `json:"o"`
	Time   int64   `json:"t"`
	Volume float64 `json:"v"`
}

type PairAggs struct {
	Ticker       string           `json:"ticker"`
	QueryCount   int              `json:"queryCount"`
	ResultsCount int              `json:"resultsCount"`
	Results      []PairAggsResult `json:"results"`
	Status       string           `json:"status"`
}
