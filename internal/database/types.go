package database

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ReportFilter narrows a drilling report query. Nil fields are ignored.
type ReportFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	DepthFrom *float64
	DepthTo   *float64
	GasShow   *bool
}

// GetWells retrieves all wells ordered by name
func (c *Client) GetWells() ([]Well, error) {
	var wells []Well
	if err := c.DB.Order("name").Find(&wells).Error; err != nil {
		return nil, err
	}
	return wells, nil
}

// GetWell retrieves a single well by ID. Returns nil when the well does
// not exist.
func (c *Client) GetWell(wellID int) (*Well, error) {
	var well Well
	err := c.DB.First(&well, wellID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &well, nil
}

// GetSurveyStations retrieves a well's survey stations in ascending MD
// order
func (c *Client) GetSurveyStations(wellID int) ([]SurveyStation, error) {
	var stations []SurveyStation
	if err := c.DB.Where("well_id = ?", wellID).Order("md").Find(&stations).Error; err != nil {
		return nil, err
	}
	return stations, nil
}

// ReplaceSurveyStations atomically replaces all survey stations for a
// well. The delete and bulk insert run in one transaction so concurrent
// readers never observe a partially-replaced station set.
func (c *Client) ReplaceSurveyStations(wellID int, stations []SurveyStation) error {
	return c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("well_id = ?", wellID).Delete(&SurveyStation{}).Error; err != nil {
			return err
		}
		if len(stations) == 0 {
			return nil
		}
		for i := range stations {
			stations[i].ID = 0
			stations[i].WellID = wellID
		}
		return tx.Create(&stations).Error
	})
}

// GetReports retrieves a well's drilling reports, newest first
func (c *Client) GetReports(wellID int, filter ReportFilter) ([]DailyDrillingReport, error) {
	q := c.DB.Where("well_id = ?", wellID)
	if filter.StartDate != nil {
		q = q.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		q = q.Where("date <= ?", *filter.EndDate)
	}
	if filter.DepthFrom != nil {
		q = q.Where("depth_end >= ?", *filter.DepthFrom)
	}
	if filter.DepthTo != nil {
		q = q.Where("depth_start <= ?", *filter.DepthTo)
	}
	if filter.GasShow != nil {
		q = q.Where("gas_show = ?", *filter.GasShow)
	}

	var reports []DailyDrillingReport
	if err := q.Order("date DESC, depth_start DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// GetLatestObservedDepth returns the depth reached by the most recent
// drilling report, or nil when the well has no reports yet
func (c *Client) GetLatestObservedDepth(wellID int) (*float64, error) {
	var report DailyDrillingReport
	err := c.DB.Where("well_id = ?", wellID).Order("date DESC, depth_start DESC").First(&report).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report.DepthEnd, nil
}

// GetLithologyByWell retrieves all observed lithology intervals for a well
// across all of its drilling reports, ordered by depth
func (c *Client) GetLithologyByWell(wellID int) ([]DrillingLithology, error) {
	var rows []DrillingLithology
	err := c.DB.
		Joins("JOIN daily_drilling_reports ON daily_drilling_reports.id = drilling_lithologies.drilling_report_id").
		Where("daily_drilling_reports.well_id = ?", wellID).
		Order("drilling_lithologies.depth_from, drilling_lithologies.depth_to").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetLithologyByReport retrieves the lithology intervals for one report
func (c *Client) GetLithologyByReport(reportID int) ([]DrillingLithology, error) {
	var rows []DrillingLithology
	if err := c.DB.Where("drilling_report_id = ?", reportID).Order("depth_from, depth_to").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetPrognoses retrieves the planned lithology rows for a well
func (c *Client) GetPrognoses(wellID int) ([]WellPrognosis, error) {
	var rows []WellPrognosis
	if err := c.DB.Where("well_id = ?", wellID).Order("planned_depth_start").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// SavePrognosisDepths persists the converted MD depth columns of a
// prognosis row
func (c *Client) SavePrognosisDepths(p *WellPrognosis) error {
	return c.DB.Model(p).Select("md_depth_start", "md_depth_end").Updates(map[string]any{
		"md_depth_start": p.MDDepthStart,
		"md_depth_end":   p.MDDepthEnd,
	}).Error
}

// GetReport retrieves a single drilling report by ID. Returns nil when
// the report does not exist.
func (c *Client) GetReport(reportID int) (*DailyDrillingReport, error) {
	var report DailyDrillingReport
	err := c.DB.First(&report, reportID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetGasShowsByReports retrieves gas show measurements for a set of
// drilling reports, ordered by depth
func (c *Client) GetGasShowsByReports(reportIDs []int) ([]GasShowMeasurement, error) {
	if len(reportIDs) == 0 {
		return nil, nil
	}
	var rows []GasShowMeasurement
	if err := c.DB.Where("drilling_report_id IN ?", reportIDs).Order("start_depth_m").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
