package collection_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	appcollection "github.com/takatrack/waste-monitoring/application/collection"
	"github.com/takatrack/waste-monitoring/cmd/config"
	"github.com/takatrack/waste-monitoring/constant"
	publishermocks "github.com/takatrack/waste-monitoring/mocks/application/collection"
	collectionmocks "github.com/takatrack/waste-monitoring/mocks/repository/collection"
	"github.com/takatrack/waste-monitoring/model"
	"github.com/takatrack/waste-monitoring/thirdparty/rabbitmq"
	cerr "github.com/takatrack/waste-monitoring/utils/errors"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func collectorUser() *model.UserEntity {
	return &model.UserEntity{ID: 7, Role: constant.RoleCollector}
}

func submitRequest() *model.SubmitCollectionRequest {
	return &model.SubmitCollectionRequest{
		SiteName:        "Rosterman Dumpsite",
		WasteType:       constant.WasteOrganic,
		CollectionDate:  "2025-01-10",
		TotalVolume:     dec("10"),
		WasteSeparated:  false,
		CollectionCount: 1,
		Latitude:        decPtr("0.25509"),
		Longitude:       decPtr("34.72066"),
	}
}

func TestCollectionApp_Submit(t *testing.T) {
	type fields struct {
		config         *config.Config
		collectionRepo *collectionmocks.CollectionRepository
		publisher      *publishermocks.EventPublisher
	}
	type args struct {
		ctx  context.Context
		user *model.UserEntity
		req  *model.SubmitCollectionRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: collector submits record",
			fields: fields{
				config:         &config.Config{},
				collectionRepo: collectionmocks.NewCollectionRepository(t),
				publisher:      publishermocks.NewEventPublisher(t),
			},
			args: args{
				ctx:  context.Background(),
				user: collectorUser(),
				req:  submitRequest(),
			},
			mockCall: func(f fields) {
				f.collectionRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.CollectionEntity) bool {
						return ent.CollectorID == 7 &&
							ent.SiteName == "Rosterman Dumpsite" &&
							ent.WasteType == constant.WasteOrganic &&
							ent.CollectionDate.Format("2006-01-02") == "2025-01-10" &&
							ent.TotalVolume.Equal(dec("10")) &&
							ent.Latitude.Valid && ent.Longitude.Valid
					})).
					Return(&model.CollectionEntity{
						ID:          101,
						CollectorID: 7,
						SiteName:    "Rosterman Dumpsite",
					}, nil).
					Once()

				f.publisher.
					On("PublishCollectionSubmitted", mock.MatchedBy(func(msg rabbitmq.CollectionSubmittedMessage) bool {
						return msg.RecordID == 101 && msg.CollectorID == 7 && msg.CollectionDate == "2025-01-10"
					})).
					Return(nil).
					Once()
			},
		},
		{
			name: "error: role user cannot submit",
			fields: fields{
				config:         &config.Config{},
				collectionRepo: collectionmocks.NewCollectionRepository(t),
				publisher:      publishermocks.NewEventPublisher(t),
			},
			args: args{
				ctx:  context.Background(),
				user: &model.UserEntity{ID: 3, Role: constant.RoleUser},
				req:  submitRequest(),
			},
			// no repo expectations: nothing may be persisted
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name: "error: separated volumes exceed total",
			fields: fields{
				config:         &config.Config{},
				collectionRepo: collectionmocks.NewCollectionRepository(t),
				publisher:      publishermocks.NewEventPublisher(t),
			},
			args: args{
				ctx:  context.Background(),
				user: collectorUser(),
				req: &model.SubmitCollectionRequest{
					SiteName:        "Rosterman Dumpsite",
					WasteType:       constant.WasteMixed,
					CollectionDate:  "2025-01-10",
					TotalVolume:     dec("10"),
					WasteSeparated:  true,
					OrganicVolume:   decPtr("6"),
					InorganicVolume: decPtr("4.01"),
					CollectionCount: 1,
				},
			},
			wantErr: true,
			errCode: constant.ErrVolumeExceeded,
		},
		{
			name: "success: separated volumes equal to total",
			fields: fields{
				config:         &config.Config{},
				collectionRepo: collectionmocks.NewCollectionRepository(t),
				publisher:      publishermocks.NewEventPublisher(t),
			},
			args: args{
				ctx:  context.Background(),
				user: collectorUser(),
				req: &model.SubmitCollectionRequest{
					SiteName:        "Rosterman Dumpsite",
					WasteType:       constant.WasteMixed,
					CollectionDate:  "2025-01-10",
					TotalVolume:     dec("10"),
					WasteSeparated:  true,
					OrganicVolume:   decPtr("6"),
					InorganicVolume: decPtr("4"),
					CollectionCount: 1,
				},
			},
			mockCall: func(f fields) {
				f.collectionRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.CollectionEntity")).
					Return(&model.CollectionEntity{ID: 102, CollectorID: 7}, nil).
					Once()

				f.publisher.
					On("PublishCollectionSubmitted", mock.AnythingOfType("rabbitmq.CollectionSubmittedMessage")).
					Return(nil).
					Once()
			},
		},
		{
			name: "success: absent separated volumes count as zero",
			fields: fields{
				config:         &config.Config{},
				collectionRepo: collectionmocks.NewCollectionRepository(t),
				publisher:      publishermocks.NewEventPublisher(t),
			},
			args: args{
				ctx:  context.Background(),
				user: collectorUser(),
				req: &model.SubmitCollectionRequest{
					SiteName:        "Rosterman Dumpsite",
					WasteType:       constant.WasteMixed,
					CollectionDate:  "2025-01-10",
					TotalVolume:     dec("10"),
					WasteSeparated:  true,
					CollectionCount: 1,
				},
			},
			mockCall: func(f fields) {
				f.collectionRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.CollectionEntity")).
					Return(&model.CollectionEntity{ID: 103, CollectorID: 7}, nil).
					Once()

				f.publisher.
					On("PublishCollectionSubmitted", mock.AnythingOfType("rabbitmq.CollectionSubmittedMessage")).
					Return(nil).
					Once()
			},
		},
		{
			name: "error: malformed collection date",
			fields: fields{
				config:         &config.Config{},
				collectionRepo: collectionmocks.NewCollectionRepository(t),
				publisher:      publishermocks.NewEventPublisher(t),
			},
			args: args{
				ctx:  context.Background(),
				user: collectorUser(),
				req: &model.SubmitCollectionRequest{
					SiteName:        "Rosterman Dumpsite",
					WasteType:       constant.WasteOrganic,
					CollectionDate:  "10-01-2025",
					TotalVolume:     dec("10"),
					CollectionCount: 1,
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: collection count below one",
			fields: fields{
				config:         &config.Config{},
				collectionRepo: collectionmocks.NewCollectionRepository(t),
				publisher:      publishermocks.NewEventPublisher(t),
			},
			args: args{
				ctx:  context.Background(),
				user: collectorUser(),
				req: &model.SubmitCollectionRequest{
					SiteName:        "Rosterman Dumpsite",
					WasteType:       constant.WasteOrganic,
					CollectionDate:  "2025-01-10",
					TotalVolume:     dec("10"),
					CollectionCount: 0,
				},
			},
			// no repo expectations: nothing may be persisted
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: latitude out of range",
			fields: fields{
				config:         &config.Config{},
				collectionRepo: collectionmocks.NewCollectionRepository(t),
				publisher:      publishermocks.NewEventPublisher(t),
			},
			args: args{
				ctx:  context.Background(),
				user: collectorUser(),
				req: &model.SubmitCollectionRequest{
					SiteName:        "Rosterman Dumpsite",
					WasteType:       constant.WasteOrganic,
					CollectionDate:  "2025-01-10",
					TotalVolume:     dec("10"),
					CollectionCount: 1,
					Latitude:        decPtr("91"),
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "success: publish failure does not fail the submission",
			fields: fields{
				config:         &config.Config{},
				collectionRepo: collectionmocks.NewCollectionRepository(t),
				publisher:      publishermocks.NewEventPublisher(t),
			},
			args: args{
				ctx:  context.Background(),
				user: collectorUser(),
				req:  submitRequest(),
			},
			mockCall: func(f fields) {
				f.collectionRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.CollectionEntity")).
					Return(&model.CollectionEntity{ID: 104, CollectorID: 7}, nil).
					Once()

				f.publisher.
					On("PublishCollectionSubmitted", mock.AnythingOfType("rabbitmq.CollectionSubmittedMessage")).
					Return(errors.New("broker down")).
					Once()
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appcollection.NewCollectionApp(tt.fields.config, tt.fields.collectionRepo, tt.fields.publisher)

			got, err := app.Submit(tt.args.ctx, tt.args.user, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Submit() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if !got.Success {
				t.Fatalf("Submit() = %+v, want success", got)
			}
		})
	}
}

func TestCollectionApp_MyRecords(t *testing.T) {
	t.Run("error: role user cannot list records", func(t *testing.T) {
		app := appcollection.NewCollectionApp(&config.Config{}, collectionmocks.NewCollectionRepository(t), nil)

		_, err := app.MyRecords(context.Background(), &model.UserEntity{ID: 3, Role: constant.RoleUser})
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrForbidden] {
			t.Fatalf("MyRecords() error = %v", err)
		}
	})

	t.Run("success: returns only the caller's rows", func(t *testing.T) {
		repo := collectionmocks.NewCollectionRepository(t)
		repo.
			On("ListByCollector", mock.Anything, uint64(7)).
			Return([]model.CollectionEntity{{ID: 1, CollectorID: 7}, {ID: 2, CollectorID: 7}}, nil).
			Once()

		app := appcollection.NewCollectionApp(&config.Config{}, repo, nil)
		records, err := app.MyRecords(context.Background(), collectorUser())
		if err != nil {
			t.Fatalf("MyRecords() error = %v", err)
		}
		if len(records) != 2 {
			t.Fatalf("MyRecords() returned %d records, want 2", len(records))
		}
	})
}

func TestCollectionApp_Filtered(t *testing.T) {
	t.Run("empty criteria pass an unconstrained filter", func(t *testing.T) {
		repo := collectionmocks.NewCollectionRepository(t)
		repo.
			On("List", mock.Anything, &model.CollectionFilter{}).
			Return([]model.CollectionEntity{{ID: 1}, {ID: 2}, {ID: 3}}, nil).
			Once()

		app := appcollection.NewCollectionApp(&config.Config{}, repo, nil)
		records, err := app.Filtered(context.Background(), &model.FilterCollectionsRequest{})
		if err != nil {
			t.Fatalf("Filtered() error = %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("Filtered() returned %d records, want 3", len(records))
		}
	})

	t.Run("criteria are parsed into typed bounds", func(t *testing.T) {
		repo := collectionmocks.NewCollectionRepository(t)
		repo.
			On("List", mock.Anything, mock.MatchedBy(func(f *model.CollectionFilter) bool {
				return f.SiteName == "Rosterman" &&
					f.WasteType == constant.WasteOrganic &&
					f.StartDate != nil && f.StartDate.Format("2006-01-02") == "2025-01-01" &&
					f.MinVolume != nil && f.MinVolume.Equal(dec("12.5")) &&
					f.MaxVolume != nil && f.MaxVolume.Equal(dec("12.5")) &&
					f.MinCollections != nil && *f.MinCollections == 2
			})).
			Return([]model.CollectionEntity{{ID: 9}}, nil).
			Once()

		app := appcollection.NewCollectionApp(&config.Config{}, repo, nil)
		_, err := app.Filtered(context.Background(), &model.FilterCollectionsRequest{
			SiteName:       "Rosterman",
			WasteType:      "Organic",
			StartDate:      "2025-01-01",
			MinVolume:      "12.5",
			MaxVolume:      "12.5",
			MinCollections: "2",
		})
		if err != nil {
			t.Fatalf("Filtered() error = %v", err)
		}
	})

	t.Run("error: unparseable bound", func(t *testing.T) {
		app := appcollection.NewCollectionApp(&config.Config{}, collectionmocks.NewCollectionRepository(t), nil)

		_, err := app.Filtered(context.Background(), &model.FilterCollectionsRequest{MinVolume: "a lot"})
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInvalidRequest] {
			t.Fatalf("Filtered() error = %v", err)
		}
	})

	t.Run("error: unknown waste type", func(t *testing.T) {
		app := appcollection.NewCollectionApp(&config.Config{}, collectionmocks.NewCollectionRepository(t), nil)

		_, err := app.Filtered(context.Background(), &model.FilterCollectionsRequest{WasteType: "Radioactive"})
		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInvalidRequest] {
			t.Fatalf("Filtered() error = %v", err)
		}
	})
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCollectionApp_Summary(t *testing.T) {
	repo := collectionmocks.NewCollectionRepository(t)
	repo.
		On("List", mock.Anything, (*model.CollectionFilter)(nil)).
		Return([]model.CollectionEntity{
			{ID: 1, SiteName: "Rosterman Dumpsite", WasteType: constant.WasteOrganic, TotalVolume: dec("0.1")},
			{ID: 2, SiteName: "Rosterman Dumpsite", WasteType: constant.WasteInorganic, TotalVolume: dec("0.2")},
			{ID: 3, SiteName: "Kakamega Market", WasteType: constant.WasteMixed, TotalVolume: dec("10")},
		}, nil).
		Once()

	app := appcollection.NewCollectionApp(&config.Config{}, repo, nil)
	summary, err := app.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary() error = %v", err)
	}

	if summary.TotalRecords != 3 {
		t.Fatalf("TotalRecords = %d, want 3", summary.TotalRecords)
	}
	// decimal accumulation keeps 0.1 + 0.2 exact
	if !summary.TotalVolume.Equal(dec("10.3")) {
		t.Fatalf("TotalVolume = %s, want 10.3", summary.TotalVolume)
	}
	byType := summary.ByWasteType
	if byType.Organic != 1 || byType.Inorganic != 1 || byType.Mixed != 1 {
		t.Fatalf("ByWasteType = %+v", byType)
	}
	if byType.Organic+byType.Inorganic+byType.Mixed != summary.TotalRecords {
		t.Fatalf("waste type counts do not sum to total records")
	}
	if summary.BySite["Rosterman Dumpsite"] != 2 || summary.BySite["Kakamega Market"] != 1 {
		t.Fatalf("BySite = %+v", summary.BySite)
	}
}

func TestCollectionApp_DashboardData(t *testing.T) {
	repo := collectionmocks.NewCollectionRepository(t)
	repo.
		On("List", mock.Anything, (*model.CollectionFilter)(nil)).
		Return([]model.CollectionEntity{
			{
				ID:             1,
				SiteName:       "Rosterman Dumpsite",
				WasteType:      constant.WasteOrganic,
				CollectionDate: day("2025-01-10"),
				TotalVolume:    dec("10"),
				Latitude:       decimal.NullDecimal{Decimal: dec("0.25509"), Valid: true},
				Longitude:      decimal.NullDecimal{Decimal: dec("34.72066"), Valid: true},
			},
			{
				ID:             2,
				SiteName:       "Rosterman Dumpsite",
				WasteType:      constant.WasteMixed,
				CollectionDate: day("2025-01-10"),
				TotalVolume:    dec("2.5"),
			},
			{
				ID:             3,
				SiteName:       "Kakamega Market",
				WasteType:      constant.WasteInorganic,
				CollectionDate: day("2025-01-11"),
				TotalVolume:    dec("4"),
			},
		}, nil).
		Once()

	app := appcollection.NewCollectionApp(&config.Config{}, repo, nil)
	data, err := app.DashboardData(context.Background())
	if err != nil {
		t.Fatalf("DashboardData() error = %v", err)
	}

	if len(data.TrendData) != 2 {
		t.Fatalf("TrendData has %d buckets, want 2", len(data.TrendData))
	}
	if !data.TrendData["2025-01-10"].Equal(dec("12.5")) {
		t.Fatalf("TrendData[2025-01-10] = %s, want 12.5", data.TrendData["2025-01-10"])
	}
	if !data.TrendData["2025-01-11"].Equal(dec("4")) {
		t.Fatalf("TrendData[2025-01-11] = %s, want 4", data.TrendData["2025-01-11"])
	}

	// records without coordinates never become markers
	if len(data.Markers) != 1 {
		t.Fatalf("Markers has %d entries, want 1", len(data.Markers))
	}
	marker := data.Markers[0]
	if marker.ID != 1 || marker.SiteName != "Rosterman Dumpsite" || marker.WasteType != constant.WasteOrganic {
		t.Fatalf("marker = %+v", marker)
	}
	if marker.Lat != 0.25509 || marker.Lng != 34.72066 || marker.Volume != 10 {
		t.Fatalf("marker projection = %+v", marker)
	}
	if marker.Date != "2025-01-10" {
		t.Fatalf("marker date = %s, want 2025-01-10", marker.Date)
	}

	if data.Summary.TotalRecords != 3 || !data.Summary.TotalVolume.Equal(dec("16.5")) {
		t.Fatalf("dashboard summary = %+v", data.Summary)
	}
}
