package fileval

// Statistics summarizes a batch of validation results.
type Statistics struct {
	TotalFiles   int
	ValidFiles   int
	InvalidFiles int
	TotalSize    int64
	ValidSize    int64
	ByType       map[FileType]int
}

// Summarize folds a batch of results into aggregate counts.
func Summarize(results []Result) Statistics {
	stats := Statistics{ByType: map[FileType]int{}}

	for _, result := range results {
		stats.TotalFiles++
		stats.TotalSize += result.Size
		stats.ByType[result.Type]++

		if result.IsValid {
			stats.ValidFiles++
			stats.ValidSize += result.Size
		} else {
			stats.InvalidFiles++
		}
	}

	return stats
}

// ValidPercentage returns the share of valid files, from 0 to 100.
func (s Statistics) ValidPercentage() float64 {
	if s.TotalFiles == 0 {
		return 0
	}

	return float64(s.ValidFiles) / float64(s.TotalFiles) * 100
}

// AverageSize returns the mean file size across all results.
func (s Statistics) AverageSize() int64 {
	if s.TotalFiles == 0 {
		return 0
	}

	return s.TotalSize / int64(s.TotalFiles)
}

// Valid returns only the valid results from a batch.
func Valid(results []Result) []Result {
	var valid []Result
	for _, result := range results {
		if result.IsValid {
			valid = append(valid, result)
		}
	}

	return valid
}

// Invalid returns only the invalid results from a batch.
func Invalid(results []Result) []Result {
	var invalid []Result
	for _, result := range results {
		if !result.IsValid {
			invalid = append(invalid, result)
		}
	}

	return invalid
}
