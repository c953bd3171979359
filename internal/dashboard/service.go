package dashboard

import (
	"context"
	"math"
	"sort"
)

type DailyPoint struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type Summary struct {
	Products     int          `json:"products"`
	Stores       int          `json:"stores"`
	Orders       int          `json:"orders"`
	TotalRevenue float64      `json:"total_revenue"`
	Series       []DailyPoint `json:"series"`
}

type Service interface {
	Summary(ctx context.Context) (*Summary, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Summary is a pure read-side projection. The three queries run
// independently, so the metrics may skew against each other by
// whatever was written in between; callers tolerate that.
func (s *service) Summary(ctx context.Context) (*Summary, error) {
	products, err := s.repo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}

	stores, err := s.repo.CountStores(ctx)
	if err != nil {
		return nil, err
	}

	points, err := s.repo.OrderPoints(ctx)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		Products: products,
		Stores:   stores,
		Orders:   len(points),
	}

	buckets := make(map[string]*DailyPoint)
	for _, p := range points {
		summary.TotalRevenue += p.Total

		day := p.CreatedAt.Format("2006-01-02")
		bucket, ok := buckets[day]
		if !ok {
			bucket = &DailyPoint{Date: day}
			buckets[day] = bucket
		}
		bucket.Orders++
		bucket.Revenue = roundCents(bucket.Revenue + p.Total)
	}
	summary.TotalRevenue = roundCents(summary.TotalRevenue)

	for _, bucket := range buckets {
		summary.Series = append(summary.Series, *bucket)
	}
	sort.Slice(summary.Series, func(i, j int) bool {
		return summary.Series[i].Date < summary.Series[j].Date
	})

	return summary, nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
