package marketdata

import "github.com/edittrades/signalcore/internal/models"

// SymbolInfo maps one internal symbol to its upstream pair identifiers and
// display metadata. KrakenPair and CoinbasePair are different wire formats
// for the same market (Kraken's "XBTUSD" vs Coinbase's "BTC-USD") — a
// provider must be given the id in its own format, never the other's.
type SymbolInfo struct {
	InternalSymbol string
	KrakenPair     string
	CoinbasePair   string
	Base           string
	Quote          string
	Name           string
}

// SymbolTable is the internalSymbol -> SymbolInfo mapping. Unknown symbols
// are rejected with models.ErrUnknownSymbol.
type SymbolTable struct {
	bySymbol map[string]SymbolInfo
}

// seedSymbols is the table's static bootstrap content, covering the major
// USD-quoted pairs Kraken lists; getAllKrakenPairs refreshes and extends
// this at runtime.
var seedSymbols = []SymbolInfo{
	{InternalSymbol: "BTCUSD", KrakenPair: "XBTUSD", CoinbasePair: "BTC-USD", Base: "BTC", Quote: "USD", Name: "Bitcoin"},
	{InternalSymbol: "ETHUSD", KrakenPair: "ETHUSD", CoinbasePair: "ETH-USD", Base: "ETH", Quote: "USD", Name: "Ethereum"},
	{InternalSymbol: "SOLUSD", KrakenPair: "SOLUSD", CoinbasePair: "SOL-USD", Base: "SOL", Quote: "USD", Name: "Solana"},
	{InternalSymbol: "ADAUSD", KrakenPair: "ADAUSD", CoinbasePair: "ADA-USD", Base: "ADA", Quote: "USD", Name: "Cardano"},
	{InternalSymbol: "DOGEUSD", KrakenPair: "XDGUSD", CoinbasePair: "DOGE-USD", Base: "DOGE", Quote: "USD", Name: "Dogecoin"},
	{InternalSymbol: "LTCUSD", KrakenPair: "LTCUSD", CoinbasePair: "LTC-USD", Base: "LTC", Quote: "USD", Name: "Litecoin"},
	{InternalSymbol: "LINKUSD", KrakenPair: "LINKUSD", CoinbasePair: "LINK-USD", Base: "LINK", Quote: "USD", Name: "Chainlink"},
	{InternalSymbol: "XRPUSD", KrakenPair: "XRPUSD", CoinbasePair: "XRP-USD", Base: "XRP", Quote: "USD", Name: "XRP"},
}

// NewSymbolTable builds a table seeded with the static bootstrap set.
func NewSymbolTable() *SymbolTable {
	t := &SymbolTable{bySymbol: make(map[string]SymbolInfo, len(seedSymbols))}
	for _, s := range seedSymbols {
		t.bySymbol[s.InternalSymbol] = s
	}
	return t
}

// Lookup resolves an internal symbol to its SymbolInfo.
func (t *SymbolTable) Lookup(symbol string) (SymbolInfo, error) {
	info, ok := t.bySymbol[symbol]
	if !ok {
		return SymbolInfo{}, models.ErrUnknownSymbol
	}
	return info, nil
}

// Refresh replaces/extends the table from a freshly discovered pair list,
// keyed by internal symbol (base+quote). Existing entries for symbols not
// present in pairs are left untouched.
func (t *SymbolTable) Refresh(pairs []SymbolInfo) {
	for _, p := range pairs {
		t.bySymbol[p.InternalSymbol] = p
	}
}

// All returns every known symbol, in no particular order (map iteration
// order).
func (t *SymbolTable) All() []SymbolInfo {
	out := make([]SymbolInfo, 0, len(t.bySymbol))
	for _, s := range t.bySymbol {
		out = append(out, s)
	}
	return out
}
