package adapters

import (
	"context"

	"gorm.io/gorm"

	"stockoracle_backend/internal/feature/symbollist/domain/entity"
)

// usSeed は米国市場のデフォルト銘柄です。
var usSeed = []struct{ code, name string }{
	{"AAPL", "Apple Inc."},
	{"MSFT", "Microsoft Corp."},
	{"GOOGL", "Alphabet Inc."},
	{"AMZN", "Amazon.com Inc."},
	{"TSLA", "Tesla Inc."},
	{"META", "Meta Platforms Inc."},
	{"NFLX", "Netflix Inc."},
	{"NVDA", "NVIDIA Corp."},
	{"JPM", "JPMorgan Chase & Co."},
	{"V", "Visa Inc."},
	{"JNJ", "Johnson & Johnson"},
	{"WMT", "Walmart Inc."},
	{"PG", "Procter & Gamble Co."},
	{"MA", "Mastercard Inc."},
	{"DIS", "Walt Disney Co."},
	{"BAC", "Bank of America Corp."},
	{"INTC", "Intel Corp."},
	{"VZ", "Verizon Communications Inc."},
	{"ADBE", "Adobe Inc."},
	{"CSCO", "Cisco Systems Inc."},
	{"CRM", "Salesforce Inc."},
	{"PFE", "Pfizer Inc."},
	{"KO", "Coca-Cola Co."},
	{"PEP", "PepsiCo Inc."},
	{"CMCSA", "Comcast Corp."},
	{"AVGO", "Broadcom Inc."},
	{"ACN", "Accenture plc"},
	{"ABBV", "AbbVie Inc."},
	{"PYPL", "PayPal Holdings Inc."},
	{"NKE", "Nike Inc."},
}

// indiaSeed はインド市場のデフォルト銘柄です。
var indiaSeed = []struct{ code, name string }{
	{"RELIANCE", "Reliance Industries"},
	{"TCS", "Tata Consultancy Services"},
	{"INFY", "Infosys Ltd"},
	{"HDFCBANK", "HDFC Bank Ltd"},
	{"ICICIBANK", "ICICI Bank Ltd"},
	{"BHARTIARTL", "Bharti Airtel Ltd"},
	{"SBIN", "State Bank of India"},
	{"HCLTECH", "HCL Technologies"},
	{"TATAMOTORS", "Tata Motors Ltd"},
	{"WIPRO", "Wipro Ltd"},
	{"AXISBANK", "Axis Bank Ltd"},
	{"BAJFINANCE", "Bajaj Finance Ltd"},
	{"MARUTI", "Maruti Suzuki India"},
	{"SUNPHARMA", "Sun Pharmaceutical"},
	{"TITAN", "Titan Company Ltd"},
	{"HINDUNILVR", "Hindustan Unilever"},
	{"KOTAKBANK", "Kotak Mahindra Bank"},
	{"ASIANPAINT", "Asian Paints Ltd"},
	{"ITC", "ITC Ltd"},
	{"ONGC", "Oil & Natural Gas Corporation"},
	{"NTPC", "NTPC Ltd"},
	{"POWERGRID", "Power Grid Corporation"},
	{"COALINDIA", "Coal India Ltd"},
	{"BAJAJFINSV", "Bajaj Finserv Ltd"},
	{"TATASTEEL", "Tata Steel Ltd"},
	{"GAIL", "GAIL (India) Ltd"},
	{"HINDALCO", "Hindalco Industries"},
	{"UPL", "UPL Ltd"},
	{"INDUSINDBK", "IndusInd Bank"},
	{"JSWSTEEL", "JSW Steel Ltd"},
}

// SeedDefaults はテーブルが空の場合にデフォルトの銘柄マスターを投入します。
// 既にデータがある場合は何もしません。
func SeedDefaults(ctx context.Context, db *gorm.DB) error {
	var count int64
	if err := db.WithContext(ctx).Model(&entity.Symbol{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	symbols := make([]entity.Symbol, 0, len(usSeed)+len(indiaSeed))
	sortKey := 1
	for _, s := range usSeed {
		symbols = append(symbols, entity.Symbol{
			Code: s.code, Name: s.name, Market: "US", IsActive: true, SortKey: sortKey,
		})
		sortKey++
	}
	for _, s := range indiaSeed {
		symbols = append(symbols, entity.Symbol{
			Code: s.code, Name: s.name, Market: "India", IsActive: true, SortKey: sortKey,
		})
		sortKey++
	}

	return db.WithContext(ctx).CreateInBatches(symbols, 100).Error
}
