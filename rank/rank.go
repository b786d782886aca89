package rank

import (
	"fmt"
	"sort"

	"github.com/deanrtaylor1/docrank/tfidf"
)

type ResultsMap struct {
	// Position is the 1-based position of the document in the input
	Position  int     `json:"position"`
	Score     float64 `json:"score"`
	Reference bool    `json:"reference"`
}

// Scores sums each document's TF-IDF scores over the reference vocabulary.
// Results stay in input order.
func Scores(vocab tfidf.Vocabulary, table tfidf.TFIDFTable, reference int) []ResultsMap {
	terms := vocab.Terms()
	result := make([]ResultsMap, 0, len(table))

	for i, doc := range table {
		var sum float64
		for _, term := range terms {
			sum += doc[term]
		}
		result = append(result, ResultsMap{Position: i + 1, Score: sum, Reference: i == reference})
	}
	return result
}

// MostSimilar returns the 1-based position of the non-reference document with the
// highest aggregate score. On a tie the later document wins.
func MostSimilar(vocab tfidf.Vocabulary, table tfidf.TFIDFTable, reference int) (int, error) {
	if len(table) < 2 {
		return 0, &tfidf.InsufficientDocumentsError{Count: len(table)}
	}
	if reference < 0 || reference >= len(table) {
		return 0, fmt.Errorf("reference document %d out of range [0,%d)", reference, len(table))
	}

	best := 0
	var maxSum float64
	for _, r := range Scores(vocab, table, reference) {
		if r.Reference {
			continue
		}
		if best == 0 || r.Score >= maxSum {
			maxSum = r.Score
			best = r.Position
		}
	}
	return best, nil
}

// SortByScore returns a copy of results ordered by descending score, ties by position
func SortByScore(results []ResultsMap) []ResultsMap {
	sorted := make([]ResultsMap, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	return sorted
}

// This function is a utility function to filter out results based on a predicate
func FilterResults(results []ResultsMap, filter func(ResultsMap) bool) []ResultsMap {
	var filteredResults []ResultsMap
	for _, result := range results {
		if filter(result) {
			filteredResults = append(filteredResults, result)
		}
	}
	return filteredResults
}

// Utility predicate to drop the reference document from results
func IsCandidate(result ResultsMap) bool {
	return !result.Reference
}

// Utility predicate to check if a result scored above 0
func IsGreaterThanZero(result ResultsMap) bool {
	return result.Score > 0
}
