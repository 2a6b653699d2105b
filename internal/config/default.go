package config

// PlaceholderLocation marks a freshly initialized configuration whose file
// location has not been filled in yet.
const PlaceholderLocation = "REPLACE_ME"

// Default returns a starter Config for a new project. The column candidates
// cover common English and Dutch bank export headers; the category table is
// a small sample meant to be replaced by the user's own keywords.
func Default() *Config {
	cfg := withDefaults()

	cfg.General.FileLocation = StringList{PlaceholderLocation}
	cfg.General.DateColumns = []string{"date", "datum", "transactiedatum"}
	cfg.General.DescriptionColumns = []string{"name", "description", "omschrijving", "mededelingen"}
	cfg.General.AmountColumns = []string{"amount", "bedrag"}
	cfg.General.CostOrIncomeColumns = NewSignColumns([]SignColumn{
		{Column: "af bij", Multipliers: map[string]int{"Af": -1, "Bij": 1}},
	})
	cfg.General.DateFormat = "02-01-2006"
	cfg.General.DecimalSeparator = ","
	cfg.General.CategoryExclusions = []string{"Transfers"}

	cfg.Categories = NewCategoryTable([]CategoryEntry{
		{Name: "Groceries", Keywords: []string{"Supermarket", "Albert Heijn", "Jumbo"}},
		{Name: "Subscriptions", Keywords: []string{"Spotify", "Netflix"}},
		{Name: "Transport", Keywords: []string{"NS Groep", "Shell"}},
		{Name: "Salary", Keywords: []string{"Payroll"}},
		{Name: "Transfers", Keywords: []string{"Savings Account"}},
	})

	return cfg
}
