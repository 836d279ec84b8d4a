package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gazelia/storefront/internal/pkg/logger"
	"github.com/gazelia/storefront/internal/pkg/models"
	"github.com/gazelia/storefront/services/distance"
	"github.com/gazelia/storefront/services/resellers"
)

const defaultPerPage = 9

// ResellerUC implements the reseller directory business logic
type ResellerUC struct {
	repo       resellers.ResellerRepo
	distanceUC distance.DistanceUC

	// lastFilterSig detects filter or sort changes between page requests so
	// a stale page number never survives a narrowed result set.
	mu            sync.Mutex
	lastFilterSig string
}

// NewResellerUC creates the reseller directory usecase
func NewResellerUC(repo resellers.ResellerRepo, distanceUC distance.DistanceUC) *ResellerUC {
	return &ResellerUC{
		repo:       repo,
		distanceUC: distanceUC,
	}
}

// ListResellers resolves one page of the filtered, sorted directory. When the
// query carries an origin, every matching outlet gets a distance estimate
// joined on before sorting and pagination.
func (uc *ResellerUC) ListResellers(ctx context.Context, query models.ResellerQuery) (*models.ResellerPage, error) {
	matched, err := uc.repo.ListResellers(ctx, query.Filter)
	if err != nil {
		return nil, err
	}

	if query.PerPage <= 0 {
		query.PerPage = defaultPerPage
	}
	if query.Page <= 0 {
		query.Page = 1
	}

	sig := filterSignature(query)
	uc.mu.Lock()
	if uc.lastFilterSig != sig {
		uc.lastFilterSig = sig
		query.Page = 1
	}
	uc.mu.Unlock()

	views := make([]models.ResellerView, len(matched))
	for i, r := range matched {
		views[i] = models.ResellerView{Reseller: r}
	}

	unreachable := 0
	if query.Origin != nil && len(matched) > 0 {
		unreachable = uc.joinDistances(ctx, query, matched, views)
	}

	sortViews(views, query.Sort)

	total := len(views)
	start := (query.Page - 1) * query.PerPage
	if start > total {
		start = total
	}
	end := start + query.PerPage
	if end > total {
		end = total
	}

	return &models.ResellerPage{
		Items:       views[start:end],
		Page:        query.Page,
		PerPage:     query.PerPage,
		Total:       total,
		Unreachable: unreachable,
	}, nil
}

// GetReseller returns a single outlet by id
func (uc *ResellerUC) GetReseller(ctx context.Context, id string) (*models.Reseller, error) {
	return uc.repo.GetReseller(ctx, id)
}

// joinDistances attaches estimates to views in place and returns the
// unreachable count. Estimation failures degrade to a page without distances.
func (uc *ResellerUC) joinDistances(ctx context.Context, query models.ResellerQuery, matched []models.Reseller, views []models.ResellerView) int {
	destinations := make([]models.Destination, len(matched))
	for i, r := range matched {
		destinations[i] = models.Destination{ID: r.ID.String(), Coordinate: r.Coordinate()}
	}

	batch, err := uc.distanceUC.EstimateBatch(ctx, query.Origin, destinations, query.Mode)
	if err != nil {
		logger.Warn("Distance join failed, serving directory without estimates",
			logger.Err(err))
		return 0
	}

	for i := range views {
		if result, ok := batch.Results[views[i].ID.String()]; ok {
			estimate := result
			views[i].DistanceEstimate = &estimate
		}
	}
	return batch.Unreachable
}

func filterSignature(query models.ResellerQuery) string {
	return strings.Join([]string{
		query.Filter.Category,
		query.Filter.City,
		query.Filter.Product,
		query.Filter.Search,
		query.Sort,
		string(query.Mode),
		fmt.Sprint(query.Origin != nil),
	}, "|")
}

// sortViews orders the directory. Distance ordering puts resolved estimates
// first, ascending, with unresolved outlets after them in name order.
func sortViews(views []models.ResellerView, sortBy string) {
	switch sortBy {
	case models.SortByRating:
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].Rating > views[j].Rating
		})
	case models.SortByReviews:
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].ReviewCount > views[j].ReviewCount
		})
	case models.SortByDeliveryMin:
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].DeliveryTimeMin < views[j].DeliveryTimeMin
		})
	case models.SortByDistance:
		sort.SliceStable(views, func(i, j int) bool {
			di, dj := views[i].DistanceEstimate, views[j].DistanceEstimate
			if di != nil && dj != nil {
				return di.DistanceValue < dj.DistanceValue
			}
			return di != nil && dj == nil
		})
	case models.SortByName:
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].Name < views[j].Name
		})
	}
}
