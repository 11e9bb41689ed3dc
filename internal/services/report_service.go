package services

import (
	"math/rand"
	"regexp"
	"sort"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"github.com/railmadad/internal/models"
	"github.com/railmadad/internal/repositories"
)

// wordPattern matches alphanumeric tokens; punctuation never counts.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// monthLayout is the bucket key for the monthly time series.
const monthLayout = "2006-01"

// ReportOverview mirrors the dashboard's headline metrics.
type ReportOverview struct {
	TotalComplaints      int     `json:"totalComplaints"`
	ResolutionRate       float64 `json:"resolutionRate"`
	AvgDescriptionLength float64 `json:"avgDescriptionLength"`
}

// CategoryCount is one slice of the category distribution chart.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryRate is the resolution rate of one category group.
type CategoryRate struct {
	Category string  `json:"category"`
	Rate     float64 `json:"rate"`
}

// MonthlyCount is one point of the complaints-over-time chart.
type MonthlyCount struct {
	Month string `json:"month"` // YYYY-MM
	Count int    `json:"count"`
}

// MonthlyRate is one point of the resolution-rate-over-time chart.
type MonthlyRate struct {
	Month string  `json:"month"` // YYYY-MM
	Rate  float64 `json:"rate"`
}

// WordCount is one bar of the most-common-words chart.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// ReportService computes display-ready views over the filtered complaint set.
// It performs no writes; every method reads one snapshot and derives its view
// from that alone.
type ReportService interface {
	Overview(filter models.ComplaintFilter) (*ReportOverview, error)
	CategoryCounts(filter models.ComplaintFilter) ([]CategoryCount, error)
	ResolutionRateByCategory(filter models.ComplaintFilter) ([]CategoryRate, error)
	MonthlyCounts(filter models.ComplaintFilter) ([]MonthlyCount, error)
	MonthlyResolutionRate(filter models.ComplaintFilter) ([]MonthlyRate, error)
	TopWords(filter models.ComplaintFilter, limit int) ([]WordCount, error)
	SampleComplaints(filter models.ComplaintFilter, limit int) ([]models.Complaint, error)
}

// reportService is the ReportService implementation.
type reportService struct {
	repo repositories.ComplaintRepository
}

// NewReportService creates a new reportService instance.
func NewReportService(repo repositories.ComplaintRepository) ReportService {
	return &reportService{repo: repo}
}

// Overview returns total count, overall resolution rate and average
// description length (in characters) for the filtered set.
func (s *reportService) Overview(filter models.ComplaintFilter) (*ReportOverview, error) {
	complaints, err := s.repo.FindAll(filter)
	if err != nil {
		return nil, err
	}

	overview := &ReportOverview{TotalComplaints: len(complaints)}
	if len(complaints) == 0 {
		return overview, nil
	}

	resolved := 0
	totalLength := 0
	for _, c := range complaints {
		if c.Resolved {
			resolved++
		}
		totalLength += utf8.RuneCountInString(c.Description)
	}
	overview.ResolutionRate = float64(resolved) / float64(len(complaints))
	overview.AvgDescriptionLength = float64(totalLength) / float64(len(complaints))
	return overview, nil
}

// CategoryCounts groups the filtered set by category, most frequent first.
func (s *reportService) CategoryCounts(filter models.ComplaintFilter) ([]CategoryCount, error) {
	complaints, err := s.repo.FindAll(filter)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, c := range complaints {
		counts[c.Category]++
	}

	result := make([]CategoryCount, 0, len(counts))
	for category, count := range counts {
		result = append(result, CategoryCount{Category: category, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Category < result[j].Category
	})
	return result, nil
}

// ResolutionRateByCategory computes resolved/total per category group,
// highest rate first. An empty group never occurs here (a category only
// appears once a complaint exists in it), but rates are guarded anyway.
func (s *reportService) ResolutionRateByCategory(filter models.ComplaintFilter) ([]CategoryRate, error) {
	complaints, err := s.repo.FindAll(filter)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	resolved := make(map[string]int)
	for _, c := range complaints {
		totals[c.Category]++
		if c.Resolved {
			resolved[c.Category]++
		}
	}

	result := make([]CategoryRate, 0, len(totals))
	for category, total := range totals {
		result = append(result, CategoryRate{Category: category, Rate: safeRate(resolved[category], total)})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Rate != result[j].Rate {
			return result[i].Rate > result[j].Rate
		}
		return result[i].Category < result[j].Category
	})
	return result, nil
}

// MonthlyCounts buckets the filtered set by submission month, oldest first.
func (s *reportService) MonthlyCounts(filter models.ComplaintFilter) ([]MonthlyCount, error) {
	complaints, err := s.repo.FindAll(filter)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, c := range complaints {
		counts[c.DateSubmitted.Format(monthLayout)]++
	}

	result := make([]MonthlyCount, 0, len(counts))
	for month, count := range counts {
		result = append(result, MonthlyCount{Month: month, Count: count})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month < result[j].Month })
	return result, nil
}

// MonthlyResolutionRate computes resolved/total per submission month, oldest
// first. Empty months are simply absent from the series.
func (s *reportService) MonthlyResolutionRate(filter models.ComplaintFilter) ([]MonthlyRate, error) {
	complaints, err := s.repo.FindAll(filter)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	resolved := make(map[string]int)
	for _, c := range complaints {
		month := c.DateSubmitted.Format(monthLayout)
		totals[month]++
		if c.Resolved {
			resolved[month]++
		}
	}

	result := make([]MonthlyRate, 0, len(totals))
	for month, total := range totals {
		result = append(result, MonthlyRate{Month: month, Rate: safeRate(resolved[month], total)})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Month < result[j].Month })
	return result, nil
}

// TopWords counts case-insensitive alphanumeric tokens across all filtered
// descriptions and returns the limit most frequent, ties broken
// lexicographically. "Delay, delay!" contributes 2 to "delay".
func (s *reportService) TopWords(filter models.ComplaintFilter, limit int) ([]WordCount, error) {
	complaints, err := s.repo.FindAll(filter)
	if err != nil {
		return nil, err
	}

	// Unicode case folding rather than plain lowercasing, descriptions are
	// free text in any script. A cases.Caser holds state, so it is created
	// per call instead of shared across requests.
	folder := cases.Fold()

	counts := make(map[string]int)
	for _, c := range complaints {
		for _, token := range wordPattern.FindAllString(folder.String(c.Description), -1) {
			counts[token]++
		}
	}

	words := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		words = append(words, WordCount{Word: word, Count: count})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})

	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words, nil
}

// SampleComplaints returns up to limit records drawn at random without
// replacement from the filtered set, for the dashboard's sample panel.
func (s *reportService) SampleComplaints(filter models.ComplaintFilter, limit int) ([]models.Complaint, error) {
	complaints, err := s.repo.FindAll(filter)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > len(complaints) {
		limit = len(complaints)
	}

	sample := make([]models.Complaint, 0, limit)
	for _, idx := range rand.Perm(len(complaints))[:limit] {
		sample = append(sample, complaints[idx])
	}
	return sample, nil
}

// safeRate divides resolved by total, defined as 0 for an empty group.
func safeRate(resolved, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(resolved) / float64(total)
}
