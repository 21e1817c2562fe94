package database

import (
	"time"
)

// Well represents a drilling well being tracked by the system
type Well struct {
	ID       int        `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name     string     `gorm:"column:name;not null;unique" json:"name"`
	Field    string     `gorm:"column:field" json:"field,omitempty"`
	SpudDate *time.Time `gorm:"column:spud_date" json:"spud_date,omitempty"`
}

// TableName specifies the table name for Well
func (Well) TableName() string {
	return "wells"
}

// SurveyStation is one directional survey row for a well. MD is the
// ordering key; TVD, Northing and Easting are nullable because older
// surveys recorded MD only (absent TVD means "assumed vertical").
type SurveyStation struct {
	ID            int      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	WellID        int      `gorm:"column:well_id;index:idx_survey_well_md,priority:1;not null" json:"well_id"`
	MD            float64  `gorm:"column:md;index:idx_survey_well_md,priority:2;not null" json:"md"`
	TVD           *float64 `gorm:"column:tvd" json:"tvd,omitempty"`
	Northing      *float64 `gorm:"column:northing" json:"northing,omitempty"`
	Easting       *float64 `gorm:"column:easting" json:"easting,omitempty"`
	ImportBatchID string   `gorm:"column:import_batch_id" json:"import_batch_id,omitempty"`
}

// TableName specifies the table name for SurveyStation
func (SurveyStation) TableName() string {
	return "well_survey_stations"
}

// DailyDrillingReport is one day's drilling progress for a well
type DailyDrillingReport struct {
	ID               int       `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	WellID           int       `gorm:"column:well_id;index;not null" json:"well_id"`
	ReportNo         int       `gorm:"column:report_no" json:"report_no"`
	Date             time.Time `gorm:"column:date;not null" json:"date"`
	DepthStart       float64   `gorm:"column:depth_start" json:"depth_start"`
	DepthEnd         float64   `gorm:"column:depth_end" json:"depth_end"`
	DepthStartTVD    *float64  `gorm:"column:depth_start_tvd" json:"depth_start_tvd,omitempty"`
	DepthEndTVD      *float64  `gorm:"column:depth_end_tvd" json:"depth_end_tvd,omitempty"`
	PresentActivity  string    `gorm:"column:present_activity" json:"present_activity,omitempty"`
	CurrentOperation string    `gorm:"column:current_operation" json:"current_operation,omitempty"`
	NextProgram      string    `gorm:"column:next_program" json:"next_program,omitempty"`
	Comments         string    `gorm:"column:comments" json:"comments,omitempty"`
	GasShow          bool      `gorm:"column:gas_show;default:false" json:"gas_show"`
}

// TableName specifies the table name for DailyDrillingReport
func (DailyDrillingReport) TableName() string {
	return "daily_drilling_reports"
}

// DrillingLithology is an observed rock-composition interval attached to a
// drilling report. Percentage columns are nullable; a nil column means the
// rock type was not recorded, not that it was measured as zero.
type DrillingLithology struct {
	ID                  int      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	DrillingReportID    int      `gorm:"column:drilling_report_id;index;not null" json:"drilling_report_id"`
	DepthFrom           float64  `gorm:"column:depth_from;not null" json:"depth_from"`
	DepthTo             float64  `gorm:"column:depth_to;not null" json:"depth_to"`
	SandPercentage      *float64 `gorm:"column:sand_percentage" json:"sand_percentage,omitempty"`
	ClayPercentage      *float64 `gorm:"column:clay_percentage" json:"clay_percentage,omitempty"`
	ShalePercentage     *float64 `gorm:"column:shale_percentage" json:"shale_percentage,omitempty"`
	SiltPercentage      *float64 `gorm:"column:silt_percentage" json:"silt_percentage,omitempty"`
	CoalPercentage      *float64 `gorm:"column:coal_percentage" json:"coal_percentage,omitempty"`
	LimestonePercentage *float64 `gorm:"column:limestone_percentage" json:"limestone_percentage,omitempty"`
	Description         string   `gorm:"column:description" json:"description,omitempty"`
}

// TableName specifies the table name for DrillingLithology
func (DrillingLithology) TableName() string {
	return "drilling_lithologies"
}

// WellPrognosis is a planned lithology row for a well. Planned depths are
// TVD from the geological prognosis; the MD columns are populated later by
// converting through the well's directional survey.
type WellPrognosis struct {
	ID                int      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	WellID            int      `gorm:"column:well_id;index;not null" json:"well_id"`
	PlannedDepthStart *float64 `gorm:"column:planned_depth_start" json:"planned_depth_start,omitempty"`
	PlannedDepthEnd   *float64 `gorm:"column:planned_depth_end" json:"planned_depth_end,omitempty"`
	MDDepthStart      *float64 `gorm:"column:md_depth_start" json:"md_depth_start,omitempty"`
	MDDepthEnd        *float64 `gorm:"column:md_depth_end" json:"md_depth_end,omitempty"`
	Lithology         string   `gorm:"column:lithology" json:"lithology"`
	TargetDepth       bool     `gorm:"column:target_depth;default:false" json:"target_depth"`
}

// TableName specifies the table name for WellPrognosis
func (WellPrognosis) TableName() string {
	return "well_prognoses"
}

// GasShowMeasurement is one gas reading interval attached to a drilling
// report
type GasShowMeasurement struct {
	ID               int     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	DrillingReportID int     `gorm:"column:drilling_report_id;index;not null" json:"drilling_report_id"`
	Formation        string  `gorm:"column:formation" json:"formation"`
	StartDepthM      float64 `gorm:"column:start_depth_m" json:"start_depth_m"`
	EndDepthM        float64 `gorm:"column:end_depth_m" json:"end_depth_m"`
	MaxPercent       float64 `gorm:"column:max_percent" json:"max_percent"`
	BGPercent        float64 `gorm:"column:bg_percent" json:"bg_percent"`
	AboveBGPercent   float64 `gorm:"column:above_bg_percent" json:"above_bg_percent"`
	C1Percent        float64 `gorm:"column:c1_percent" json:"c1_percent"`
	C2Percent        float64 `gorm:"column:c2_percent" json:"c2_percent"`
	C3Percent        float64 `gorm:"column:c3_percent" json:"c3_percent"`
	IC4Percent       float64 `gorm:"column:ic4_percent" json:"ic4_percent"`
	NC5Percent       float64 `gorm:"column:nc5_percent" json:"nc5_percent"`
	Remarks          *string `gorm:"column:remarks" json:"remarks,omitempty"`
}

// TableName specifies the table name for GasShowMeasurement
func (GasShowMeasurement) TableName() string {
	return "gas_show_measurements"
}
