package data

import (
	_ "embed"
)

// SeedDailyPhrases is the first-boot phrase set, one "text|author"
// pair per line.
//
//go:embed seed/daily_phrases.txt
var SeedDailyPhrases string
