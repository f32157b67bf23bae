package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	tiktoken "github.com/pkoukk/tiktoken-go"
	hf "github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
)

// Tokenizer abstracts over the token-counting backends.
type Tokenizer interface {
	CountTokens(text string) int
	Close()
}

// --- Tiktoken backend ---

type TiktokenWrapper struct {
	ttk *tiktoken.Tiktoken
}

func (w *TiktokenWrapper) CountTokens(text string) int {
	if w.ttk == nil {
		return 0
	}
	return len(w.ttk.EncodeOrdinary(text))
}

func (w *TiktokenWrapper) Close() {}

// --- HuggingFace (sugarme) backend ---

type HFTokenizerWrapper struct {
	htk *hf.Tokenizer
}

func (w *HFTokenizerWrapper) CountTokens(text string) int {
	if w.htk == nil {
		return 0
	}
	en, err := w.htk.EncodeSingle(text)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: tokenizer failed to encode text: %v\n", err)
		return 0
	}
	return len(en.Tokens)
}

func (w *HFTokenizerWrapper) Close() {}

const defaultTiktokenModel = "gpt-4o"
const defaultHFModel = "gpt2"

// getTokenizer builds a tokenizer from the --tokenizer/--model/--tokenizer-file
// flags.
func getTokenizer() (Tokenizer, error) {
	switch strings.ToLower(tokenizerType) {
	case "tiktoken":
		return loadTiktoken()
	case "huggingface":
		return loadHuggingFace()
	default:
		return nil, fmt.Errorf("unsupported tokenizer type: %s (use 'tiktoken' or 'huggingface')", tokenizerType)
	}
}

func loadTiktoken() (Tokenizer, error) {
	model := tokenizerModel
	if model == "" {
		model = defaultTiktokenModel
	}

	tke, err := tiktoken.EncodingForModel(model)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: tiktoken model %q not found, falling back to %q: %v\n", model, defaultTiktokenModel, err)
		tke, err = tiktoken.EncodingForModel(defaultTiktokenModel)
		if err != nil {
			return nil, fmt.Errorf("failed to get tiktoken encoding for %q: %w", defaultTiktokenModel, err)
		}
	}
	return &TiktokenWrapper{ttk: tke}, nil
}

func loadHuggingFace() (Tokenizer, error) {
	if tokenizerFile != "" {
		ttk, err := pretrained.FromFile(tokenizerFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load tokenizer from file %s: %w", tokenizerFile, err)
		}
		return &HFTokenizerWrapper{htk: ttk}, nil
	}

	model := tokenizerModel
	if model == "" {
		model = defaultHFModel
	}
	configFilePath, err := hf.CachedPath(model, "tokenizer.json")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache path for model %s: %w", model, err)
	}
	ttk, err := pretrained.FromFile(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load pretrained tokenizer for model %s: %w", model, err)
	}
	return &HFTokenizerWrapper{htk: ttk}, nil
}

// tokenTotals re-reads every classified file on a worker pool and sums token
// counts per language. Read failures only cost that file its token count;
// they never fail the run.
func tokenTotals(records []FileRecord, tk Tokenizer, threads int) map[string]int64 {
	numWorkers := threads
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	jobs := make(chan FileRecord, 64)
	type tokenResult struct {
		language string
		tokens   int64
	}
	results := make(chan tokenResult, 64)
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for record := range jobs {
				content, err := os.ReadFile(record.Path)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Warning: could not read %s for token counting: %v\n", record.Path, err)
					continue
				}
				results <- tokenResult{record.Language, int64(tk.CountTokens(string(content)))}
			}
		}()
	}

	totals := make(map[string]int64)
	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for res := range results {
			totals[res.language] += res.tokens
		}
	}()

	for _, record := range records {
		if record.Language != "" {
			jobs <- record
		}
	}
	close(jobs)
	wg.Wait()
	close(results)
	<-collected

	return totals
}
