package model

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/takatrack/waste-monitoring/constant"
)

// CollectionEntity represents the collections table entity. Volume and
// coordinate fields stay decimal all the way to the storage boundary;
// conversion to float happens only for display projections.
type CollectionEntity struct {
	ID              uint64              `db:"id" json:"id"`
	CollectorID     uint64              `db:"collector_id" json:"collector_id"`
	SiteName        string              `db:"site_name" json:"site_name"`
	WasteType       constant.WasteType  `db:"waste_type" json:"waste_type"`
	CollectionDate  time.Time           `db:"collection_date" json:"collection_date"`
	TotalVolume     decimal.Decimal     `db:"total_volume" json:"total_volume"`
	WasteSeparated  bool                `db:"waste_separated" json:"waste_separated"`
	OrganicVolume   decimal.NullDecimal `db:"organic_volume" json:"organic_volume"`
	InorganicVolume decimal.NullDecimal `db:"inorganic_volume" json:"inorganic_volume"`
	CollectionCount int                 `db:"collection_count" json:"collection_count"`
	Latitude        decimal.NullDecimal `db:"latitude" json:"latitude"`
	Longitude       decimal.NullDecimal `db:"longitude" json:"longitude"`
	Comments        *string             `db:"comments" json:"comments,omitempty"`
	CreatedAt       time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time           `db:"updated_at" json:"updated_at"`
}

// SubmitCollectionRequest for record submission. Decimal ranges are checked in
// the application layer since validator tags cannot inspect decimal values.
type SubmitCollectionRequest struct {
	SiteName        string             `json:"site_name" validate:"required"`
	WasteType       constant.WasteType `json:"waste_type" validate:"required,oneof=Organic Inorganic Mixed"`
	CollectionDate  string             `json:"collection_date" validate:"required,datetime=2006-01-02"`
	TotalVolume     decimal.Decimal    `json:"total_volume"`
	WasteSeparated  bool               `json:"waste_separated"`
	OrganicVolume   *decimal.Decimal   `json:"organic_volume,omitempty"`
	InorganicVolume *decimal.Decimal   `json:"inorganic_volume,omitempty"`
	CollectionCount int                `json:"collection_count" validate:"required,min=1"`
	Latitude        *decimal.Decimal   `json:"latitude,omitempty"`
	Longitude       *decimal.Decimal   `json:"longitude,omitempty"`
	Comments        *string            `json:"comments,omitempty"`
}

// SubmitCollectionResponse acknowledges a stored record.
type SubmitCollectionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      uint64 `json:"id"`
}

// FilterCollectionsRequest is the public criteria set. Every field is
// optional; bounds arrive as strings and are parsed into typed values before
// they reach the repository.
type FilterCollectionsRequest struct {
	SiteName         string `json:"site_name,omitempty"`
	WasteType        string `json:"waste_type,omitempty"`
	StartDate        string `json:"start_date,omitempty"`
	EndDate          string `json:"end_date,omitempty"`
	MinVolume        string `json:"min_volume,omitempty"`
	MaxVolume        string `json:"max_volume,omitempty"`
	WasteSeparated   *bool  `json:"waste_separated,omitempty"`
	MinCollections   string `json:"min_collections,omitempty"`
	MinOrganicVolume string `json:"min_organic_volume,omitempty"`
}

// CollectionFilter is the typed criteria set applied conjunctively by the
// repository. Nil members impose no constraint.
type CollectionFilter struct {
	SiteName         string
	WasteType        constant.WasteType
	StartDate        *time.Time
	EndDate          *time.Time
	MinVolume        *decimal.Decimal
	MaxVolume        *decimal.Decimal
	WasteSeparated   *bool
	MinCollections   *int
	MinOrganicVolume *decimal.Decimal
}

// WasteTypeCounts breaks record counts down by waste type.
type WasteTypeCounts struct {
	Organic   int `json:"Organic"`
	Inorganic int `json:"Inorganic"`
	Mixed     int `json:"Mixed"`
}

// SummaryResponse aggregates the full record set.
type SummaryResponse struct {
	TotalRecords int             `json:"total_records"`
	TotalVolume  decimal.Decimal `json:"total_volume"`
	ByWasteType  WasteTypeCounts `json:"by_waste_type"`
	BySite       map[string]int  `json:"by_site"`
}

// MapMarker projects a geotagged record for the dashboard map.
type MapMarker struct {
	ID        uint64             `json:"id"`
	Lat       float64            `json:"lat"`
	Lng       float64            `json:"lng"`
	SiteName  string             `json:"site_name"`
	WasteType constant.WasteType `json:"waste_type"`
	Volume    float64            `json:"volume"`
	Date      string             `json:"date"`
}

// DashboardSummary is the headline pair shown on the dashboard.
type DashboardSummary struct {
	TotalRecords int             `json:"total_records"`
	TotalVolume  decimal.Decimal `json:"total_volume"`
}

// DashboardResponse combines chart and map projections.
type DashboardResponse struct {
	TrendData map[string]decimal.Decimal `json:"trend_data"`
	Markers   []MapMarker                `json:"markers"`
	Summary   DashboardSummary           `json:"summary"`
}
