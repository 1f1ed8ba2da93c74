package collection

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/takatrack/waste-monitoring/cmd/config"
	"github.com/takatrack/waste-monitoring/constant"
	"github.com/takatrack/waste-monitoring/model"
	collectionrepo "github.com/takatrack/waste-monitoring/repository/collection"
	"github.com/takatrack/waste-monitoring/thirdparty/rabbitmq"
	"github.com/takatrack/waste-monitoring/utils/errors"
	"github.com/takatrack/waste-monitoring/utils/logger"
	"go.uber.org/zap"
)

// EventPublisher emits a message for every stored submission. The rabbitmq
// publisher implements it; a nil publisher disables eventing.
type EventPublisher interface {
	PublishCollectionSubmitted(msg rabbitmq.CollectionSubmittedMessage) error
}

type CollectionApp interface {
	Submit(ctx context.Context, user *model.UserEntity, req *model.SubmitCollectionRequest) (*model.SubmitCollectionResponse, error)
	MyRecords(ctx context.Context, user *model.UserEntity) ([]model.CollectionEntity, error)
	Filtered(ctx context.Context, req *model.FilterCollectionsRequest) ([]model.CollectionEntity, error)
	Summary(ctx context.Context) (*model.SummaryResponse, error)
	DashboardData(ctx context.Context) (*model.DashboardResponse, error)
}

type collectionAppImpl struct {
	config         *config.Config
	collectionRepo collectionrepo.CollectionRepository
	publisher      EventPublisher
}

func NewCollectionApp(config *config.Config, collectionRepo collectionrepo.CollectionRepository, publisher EventPublisher) CollectionApp {
	return &collectionAppImpl{config: config, collectionRepo: collectionRepo, publisher: publisher}
}

func (s *collectionAppImpl) Submit(ctx context.Context, user *model.UserEntity, req *model.SubmitCollectionRequest) (*model.SubmitCollectionResponse, error) {
	if !user.Role.CanSubmit() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	collectionDate, err := time.Parse("2006-01-02", req.CollectionDate)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if req.CollectionCount < 1 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.TotalVolume.IsNegative() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if (req.OrganicVolume != nil && req.OrganicVolume.IsNegative()) ||
		(req.InorganicVolume != nil && req.InorganicVolume.IsNegative()) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.Latitude != nil && req.Latitude.Abs().GreaterThan(decimal.NewFromInt(90)) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.Longitude != nil && req.Longitude.Abs().GreaterThan(decimal.NewFromInt(180)) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	// Separated volumes must fit inside the total; absent volumes count as 0.
	if req.WasteSeparated {
		organic := decimal.Zero
		if req.OrganicVolume != nil {
			organic = *req.OrganicVolume
		}
		inorganic := decimal.Zero
		if req.InorganicVolume != nil {
			inorganic = *req.InorganicVolume
		}
		if organic.Add(inorganic).GreaterThan(req.TotalVolume) {
			return nil, errors.SetCustomError(constant.ErrVolumeExceeded)
		}
	}

	entity := &model.CollectionEntity{
		CollectorID:     user.ID,
		SiteName:        req.SiteName,
		WasteType:       req.WasteType,
		CollectionDate:  collectionDate,
		TotalVolume:     req.TotalVolume,
		WasteSeparated:  req.WasteSeparated,
		OrganicVolume:   toNullDecimal(req.OrganicVolume),
		InorganicVolume: toNullDecimal(req.InorganicVolume),
		CollectionCount: req.CollectionCount,
		Latitude:        toNullDecimal(req.Latitude),
		Longitude:       toNullDecimal(req.Longitude),
		Comments:        req.Comments,
	}

	entity, err = s.collectionRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[Submit] err collectionRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if s.publisher != nil {
		// the record is already committed; a lost event is not a request failure
		err := s.publisher.PublishCollectionSubmitted(rabbitmq.CollectionSubmittedMessage{
			RecordID:       entity.ID,
			CollectorID:    entity.CollectorID,
			SiteName:       entity.SiteName,
			WasteType:      string(entity.WasteType),
			TotalVolume:    entity.TotalVolume.String(),
			CollectionDate: collectionDate.Format("2006-01-02"),
			SubmittedAt:    time.Now().UTC(),
		})
		if err != nil {
			logger.Warn("[Submit] err PublishCollectionSubmitted", zap.String("error", err.Error()))
		}
	}

	return &model.SubmitCollectionResponse{
		Success: true,
		Message: "Collection submitted successfully",
		ID:      entity.ID,
	}, nil
}

func (s *collectionAppImpl) MyRecords(ctx context.Context, user *model.UserEntity) ([]model.CollectionEntity, error) {
	if !user.Role.CanSubmit() {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}

	records, err := s.collectionRepo.ListByCollector(ctx, user.ID)
	if err != nil {
		logger.Error("[MyRecords] err ListByCollector", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return records, nil
}

func (s *collectionAppImpl) Filtered(ctx context.Context, req *model.FilterCollectionsRequest) ([]model.CollectionEntity, error) {
	filter, err := buildFilter(req)
	if err != nil {
		return nil, err
	}

	records, err := s.collectionRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[Filtered] err collectionRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return records, nil
}

// Summary re-derives aggregates from the store's current contents on every
// call. Volumes accumulate as decimals, so the total is exact.
func (s *collectionAppImpl) Summary(ctx context.Context) (*model.SummaryResponse, error) {
	records, err := s.collectionRepo.List(ctx, nil)
	if err != nil {
		logger.Error("[Summary] err collectionRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	summary := &model.SummaryResponse{
		TotalRecords: len(records),
		TotalVolume:  decimal.Zero,
		BySite:       make(map[string]int),
	}
	for _, r := range records {
		summary.TotalVolume = summary.TotalVolume.Add(r.TotalVolume)
		switch r.WasteType {
		case constant.WasteOrganic:
			summary.ByWasteType.Organic++
		case constant.WasteInorganic:
			summary.ByWasteType.Inorganic++
		case constant.WasteMixed:
			summary.ByWasteType.Mixed++
		}
		summary.BySite[r.SiteName]++
	}
	return summary, nil
}

func (s *collectionAppImpl) DashboardData(ctx context.Context) (*model.DashboardResponse, error) {
	records, err := s.collectionRepo.List(ctx, nil)
	if err != nil {
		logger.Error("[DashboardData] err collectionRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resp := &model.DashboardResponse{
		TrendData: make(map[string]decimal.Decimal),
		Markers:   make([]model.MapMarker, 0),
	}
	totalVolume := decimal.Zero

	for _, r := range records {
		day := r.CollectionDate.UTC().Format("2006-01-02")
		resp.TrendData[day] = resp.TrendData[day].Add(r.TotalVolume)
		totalVolume = totalVolume.Add(r.TotalVolume)

		// only geotagged records become map markers
		if !r.Latitude.Valid || !r.Longitude.Valid {
			continue
		}
		resp.Markers = append(resp.Markers, model.MapMarker{
			ID:        r.ID,
			Lat:       r.Latitude.Decimal.InexactFloat64(),
			Lng:       r.Longitude.Decimal.InexactFloat64(),
			SiteName:  r.SiteName,
			WasteType: r.WasteType,
			Volume:    r.TotalVolume.InexactFloat64(),
			Date:      day,
		})
	}

	resp.Summary = model.DashboardSummary{
		TotalRecords: len(records),
		TotalVolume:  totalVolume,
	}
	return resp, nil
}

// buildFilter parses the string-typed public criteria into the typed filter
// the repository consumes. Unparseable bounds are the caller's fault.
func buildFilter(req *model.FilterCollectionsRequest) (*model.CollectionFilter, error) {
	filter := &model.CollectionFilter{}
	if req == nil {
		return filter, nil
	}

	filter.SiteName = req.SiteName
	filter.WasteSeparated = req.WasteSeparated

	if req.WasteType != "" {
		wasteType := constant.WasteType(req.WasteType)
		if !wasteType.Valid() {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		filter.WasteType = wasteType
	}
	if req.StartDate != "" {
		t, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		filter.StartDate = &t
	}
	if req.EndDate != "" {
		t, err := time.Parse("2006-01-02", req.EndDate)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		filter.EndDate = &t
	}
	if req.MinVolume != "" {
		d, err := decimal.NewFromString(req.MinVolume)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		filter.MinVolume = &d
	}
	if req.MaxVolume != "" {
		d, err := decimal.NewFromString(req.MaxVolume)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		filter.MaxVolume = &d
	}
	if req.MinCollections != "" {
		n, err := strconv.Atoi(req.MinCollections)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		filter.MinCollections = &n
	}
	if req.MinOrganicVolume != "" {
		d, err := decimal.NewFromString(req.MinOrganicVolume)
		if err != nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		filter.MinOrganicVolume = &d
	}
	return filter, nil
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
