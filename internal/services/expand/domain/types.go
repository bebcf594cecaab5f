// Package domain holds DTOs for expand http and service contracts
package domain

// Strategy selects how a batch of words is expanded
type Strategy string

const (
	// StrategySequential expands words one after another
	StrategySequential Strategy = "sequential"
	// StrategyParallel expands every word on its own goroutine
	StrategyParallel Strategy = "parallel"
)

// ExpandInput is the input for expanding a batch of words
// Dictionary entries override the loaded pack key by key; keys and values are single characters
type ExpandInput struct {
	Words      []string            `json:"words" validate:"required,min=1,max=1000,dive,max=64" example:"arma,carro"`
	Dictionary map[string][]string `json:"dictionary,omitempty" validate:"omitempty,max=256,dive,keys,single_char,endkeys,min=1,dive,single_char"`
	Strategy   Strategy            `json:"strategy,omitempty" validate:"omitempty,oneof=sequential parallel" example:"parallel"`
	Normalize  bool                `json:"normalize,omitempty" example:"true"`
	NoDefault  bool                `json:"no_default,omitempty" example:"false"`
}

// WordCount is the number of variants a single input word produced
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ExpandResult is the flat, input-ordered expansion of a batch
type ExpandResult struct {
	Variants []string    `json:"variants"`
	Counts   []WordCount `json:"counts"`
	Total    int         `json:"total"`
	Strategy Strategy    `json:"strategy"`
}

// CountResult reports variant counts without materialising them
type CountResult struct {
	Counts []WordCount `json:"counts"`
	Total  int         `json:"total"`
}

// DictionaryInfo describes the loaded dictionary pack
type DictionaryInfo struct {
	Name        string              `json:"name" example:"default"`
	Version     int                 `json:"version" example:"1"`
	Description string              `json:"description,omitempty"`
	Keys        []string            `json:"keys"`
	Entries     map[string][]string `json:"entries"`
}
