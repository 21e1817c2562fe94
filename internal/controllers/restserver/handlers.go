package restserver

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/mhoque/drillsight/internal/dashboard"
	"github.com/mhoque/drillsight/internal/database"
	"github.com/mhoque/drillsight/internal/log"
	"github.com/mhoque/drillsight/internal/report"
	"github.com/mhoque/drillsight/internal/survey"
	"github.com/mhoque/drillsight/internal/trajectory"
	"github.com/mhoque/drillsight/pkg/responseformat"
)

const (
	dateLayout        = "2006-01-02"
	displayDateLayout = "02 Jan, 2006"
)

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	controller *Controller
	formatter  *responseformat.Formatter
}

// NewHandlers creates a new handlers instance
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{
		controller: ctrl,
		formatter:  responseformat.NewFormatter(),
	}
}

// wellFromRequest resolves the {id} path variable to a well, writing a 404
// when it does not exist
func (h *Handlers) wellFromRequest(w http.ResponseWriter, req *http.Request) (*database.Well, bool) {
	id, err := strconv.Atoi(mux.Vars(req)["id"])
	if err != nil {
		http.Error(w, "invalid well id", http.StatusBadRequest)
		return nil, false
	}

	well, err := h.controller.DB.GetWell(id)
	if err != nil {
		log.Errorf("error fetching well %d: %v", id, err)
		http.Error(w, "error fetching well", http.StatusInternalServerError)
		return nil, false
	}
	if well == nil {
		h.formatter.WriteError(w, req, http.StatusNotFound, "well not found")
		return nil, false
	}
	return well, true
}

// wellSurvey loads a well's survey stations as a trajectory
func (h *Handlers) wellSurvey(wellID int) (*trajectory.Survey, error) {
	rows, err := h.controller.DB.GetSurveyStations(wellID)
	if err != nil {
		return nil, err
	}
	return trajectory.NewSurvey(database.TrajectoryStations(rows)), nil
}

// GetWells handles requests for the well list
func (h *Handlers) GetWells(w http.ResponseWriter, req *http.Request) {
	wells, err := h.controller.DB.GetWells()
	if err != nil {
		log.Errorf("error fetching wells: %v", err)
		http.Error(w, "error fetching wells", http.StatusInternalServerError)
		return
	}

	h.formatter.WriteResponse(w, req, map[string]any{"wells": wells}, nil)
}

// reportView is one processed drilling report in a listing response
type reportView struct {
	ID              int                           `json:"id"`
	WellID          int                           `json:"well_id"`
	ReportNo        int                           `json:"report_no"`
	Date            string                        `json:"date"`
	DateISO         string                        `json:"date_iso"`
	DepthStart      float64                       `json:"depth_start"`
	DepthEnd        float64                       `json:"depth_end"`
	DepthStartTVD   *float64                      `json:"depth_start_tvd,omitempty"`
	DepthEndTVD     *float64                      `json:"depth_end_tvd,omitempty"`
	DailyProgress   float64                       `json:"daily_progress"`
	PresentActivity string                        `json:"present_activity,omitempty"`
	CurrentOp       string                        `json:"current_operation,omitempty"`
	NextProgram     string                        `json:"next_program,omitempty"`
	Comments        string                        `json:"comments,omitempty"`
	GasShow         bool                          `json:"gas_show"`
	GasShowPeak     *float64                      `json:"gas_show_peak,omitempty"`
	Lithologies     []lithologyView               `json:"lithologies"`
	GasShows        []database.GasShowMeasurement `json:"gas_show_measurements"`
}

// lithologyView is one observed lithology interval with its derived fields
type lithologyView struct {
	DepthFrom      float64                `json:"depth_from"`
	DepthTo        float64                `json:"depth_to"`
	Components     map[string]float64     `json:"components"`
	Total          float64                `json:"total"`
	Dominant       string                 `json:"dominant_lithology"`
	DominantPct    float64                `json:"dominant_percentage"`
	PrognosisNote  string                 `json:"prognosis_comparison"`
	PrognosisLevel report.ComparisonLevel `json:"comparison_type"`
	Description    string                 `json:"description,omitempty"`
}

// GetReports handles requests for a well's filtered drilling report list
func (h *Handlers) GetReports(w http.ResponseWriter, req *http.Request) {
	well, ok := h.wellFromRequest(w, req)
	if !ok {
		return
	}

	filter, err := parseReportFilter(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	reports, err := h.controller.DB.GetReports(well.ID, filter)
	if err != nil {
		log.Errorf("error fetching reports for well %d: %v", well.ID, err)
		http.Error(w, "error fetching reports", http.StatusInternalServerError)
		return
	}

	prognoses, err := h.controller.DB.GetPrognoses(well.ID)
	if err != nil {
		log.Errorf("error fetching prognoses for well %d: %v", well.ID, err)
		http.Error(w, "error fetching prognoses", http.StatusInternalServerError)
		return
	}

	reportIDs := make([]int, len(reports))
	for i, r := range reports {
		reportIDs[i] = r.ID
	}
	gasShows, err := h.controller.DB.GetGasShowsByReports(reportIDs)
	if err != nil {
		log.Errorf("error fetching gas shows for well %d: %v", well.ID, err)
		http.Error(w, "error fetching gas shows", http.StatusInternalServerError)
		return
	}
	gasShowsByReport := make(map[int][]database.GasShowMeasurement)
	for _, m := range gasShows {
		gasShowsByReport[m.DrillingReportID] = append(gasShowsByReport[m.DrillingReportID], m)
	}

	views := make([]reportView, 0, len(reports))
	for _, r := range reports {
		lithologies, err := h.controller.DB.GetLithologyByReport(r.ID)
		if err != nil {
			log.Errorf("error fetching lithology for report %d: %v", r.ID, err)
			http.Error(w, "error fetching lithology", http.StatusInternalServerError)
			return
		}
		views = append(views, buildReportView(r, lithologies, gasShowsByReport[r.ID], prognoses))
	}

	payload := map[string]any{
		"well":    well,
		"reports": views,
	}
	if len(reports) > 0 {
		latest := reports[0]
		payload["stats"] = map[string]any{
			"total_reports":       len(reports),
			"latest_depth":        latest.DepthEnd,
			"drilling_efficiency": report.DrillingEfficiency(reports),
		}
	}
	if summary := report.SummarizeGasShows(gasShows); summary != nil {
		payload["gas_show_summary"] = summary
	}

	h.formatter.WriteResponse(w, req, payload, nil)
}

func buildReportView(r database.DailyDrillingReport, lithologies []database.DrillingLithology, gasShows []database.GasShowMeasurement, prognoses []database.WellPrognosis) reportView {
	view := reportView{
		ID:              r.ID,
		WellID:          r.WellID,
		ReportNo:        r.ReportNo,
		Date:            r.Date.Format(displayDateLayout),
		DateISO:         r.Date.Format(dateLayout),
		DepthStart:      r.DepthStart,
		DepthEnd:        r.DepthEnd,
		DepthStartTVD:   r.DepthStartTVD,
		DepthEndTVD:     r.DepthEndTVD,
		DailyProgress:   r.DepthEnd - r.DepthStart,
		PresentActivity: r.PresentActivity,
		CurrentOp:       r.CurrentOperation,
		NextProgram:     r.NextProgram,
		Comments:        r.Comments,
		GasShow:         r.GasShow || len(gasShows) > 0,
		Lithologies:     make([]lithologyView, 0, len(lithologies)),
		GasShows:        gasShows,
	}

	for _, m := range gasShows {
		if view.GasShowPeak == nil || m.MaxPercent > *view.GasShowPeak {
			peak := m.MaxPercent
			view.GasShowPeak = &peak
		}
	}

	for _, l := range lithologies {
		components := report.LithologyComponents(l)
		total := 0.0
		for _, pct := range components {
			total += pct
		}
		dominant, dominantPct := report.DominantLithology(components)
		note, level := report.CompareLithologyWithPrognosis(l, prognoses)

		view.Lithologies = append(view.Lithologies, lithologyView{
			DepthFrom:      l.DepthFrom,
			DepthTo:        l.DepthTo,
			Components:     components,
			Total:          round1(total),
			Dominant:       dominant,
			DominantPct:    round1(dominantPct),
			PrognosisNote:  note,
			PrognosisLevel: level,
			Description:    l.Description,
		})
	}

	return view
}

func parseReportFilter(req *http.Request) (database.ReportFilter, error) {
	var filter database.ReportFilter
	q := req.URL.Query()

	if v := q.Get("start_date"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return filter, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", v)
		}
		filter.StartDate = &t
	}
	if v := q.Get("end_date"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return filter, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", v)
		}
		filter.EndDate = &t
	}
	// Depth filters are advisory; unparseable values are ignored, as the
	// dashboard front end sends empty strings freely.
	if v := q.Get("depth_from"); v != "" {
		if depth, err := strconv.ParseFloat(v, 64); err == nil {
			filter.DepthFrom = &depth
		}
	}
	if v := q.Get("depth_to"); v != "" {
		if depth, err := strconv.ParseFloat(v, 64); err == nil {
			filter.DepthTo = &depth
		}
	}
	switch q.Get("gas_show") {
	case "yes":
		yes := true
		filter.GasShow = &yes
	case "no":
		no := false
		filter.GasShow = &no
	}

	return filter, nil
}

// GetDashboard handles requests for a well's visualization payload:
// prognosis and lithology tracks on a shared depth axis, trajectory, and
// current bit position
func (h *Handlers) GetDashboard(w http.ResponseWriter, req *http.Request) {
	well, ok := h.wellFromRequest(w, req)
	if !ok {
		return
	}

	stationRows, err := h.controller.DB.GetSurveyStations(well.ID)
	if err != nil {
		log.Errorf("error fetching survey stations for well %d: %v", well.ID, err)
		http.Error(w, "error fetching survey stations", http.StatusInternalServerError)
		return
	}

	prognoses, err := h.controller.DB.GetPrognoses(well.ID)
	if err != nil {
		log.Errorf("error fetching prognoses for well %d: %v", well.ID, err)
		http.Error(w, "error fetching prognoses", http.StatusInternalServerError)
		return
	}

	lithologies, err := h.controller.DB.GetLithologyByWell(well.ID)
	if err != nil {
		log.Errorf("error fetching lithology for well %d: %v", well.ID, err)
		http.Error(w, "error fetching lithology", http.StatusInternalServerError)
		return
	}

	latestDepth, err := h.controller.DB.GetLatestObservedDepth(well.ID)
	if err != nil {
		log.Errorf("error fetching latest depth for well %d: %v", well.ID, err)
		http.Error(w, "error fetching latest depth", http.StatusInternalServerError)
		return
	}

	reports, err := h.controller.DB.GetReports(well.ID, database.ReportFilter{})
	if err != nil {
		log.Errorf("error fetching reports for well %d: %v", well.ID, err)
		http.Error(w, "error fetching reports", http.StatusInternalServerError)
		return
	}
	reportIDs := make([]int, len(reports))
	for i, r := range reports {
		reportIDs[i] = r.ID
	}
	gasShows, err := h.controller.DB.GetGasShowsByReports(reportIDs)
	if err != nil {
		log.Errorf("error fetching gas shows for well %d: %v", well.ID, err)
		http.Error(w, "error fetching gas shows", http.StatusInternalServerError)
		return
	}

	data := dashboard.Build(database.TrajectoryStations(stationRows), prognoses, lithologies, gasShows, latestDepth)

	payload := map[string]any{
		"well":      well,
		"dashboard": data,
	}
	if len(reports) > 0 {
		payload["stats"] = map[string]any{
			"total_reports":       len(reports),
			"latest_depth":        reports[0].DepthEnd,
			"drilling_efficiency": report.DrillingEfficiency(reports),
		}
	}
	if summary := report.SummarizeGasShows(gasShows); summary != nil {
		payload["gas_show_summary"] = summary
	}

	h.formatter.WriteResponse(w, req, payload, nil)
}

// GetTrajectory handles requests for a well's survey stations and current
// bit position
func (h *Handlers) GetTrajectory(w http.ResponseWriter, req *http.Request) {
	well, ok := h.wellFromRequest(w, req)
	if !ok {
		return
	}

	svy, err := h.wellSurvey(well.ID)
	if err != nil {
		log.Errorf("error fetching survey stations for well %d: %v", well.ID, err)
		http.Error(w, "error fetching survey stations", http.StatusInternalServerError)
		return
	}

	payload := map[string]any{
		"well":       well,
		"trajectory": svy.Stations(),
	}

	latestDepth, err := h.controller.DB.GetLatestObservedDepth(well.ID)
	if err != nil {
		log.Errorf("error fetching latest depth for well %d: %v", well.ID, err)
		http.Error(w, "error fetching latest depth", http.StatusInternalServerError)
		return
	}
	if latestDepth != nil && !svy.IsEmpty() {
		if pos, err := svy.PositionAt(*latestDepth); err == nil {
			payload["latest_depth_point"] = pos
		}
	}

	h.formatter.WriteResponse(w, req, payload, nil)
}

// ConvertDepth handles MD to TVD (or TVD to MD) conversion requests using
// the well's stored survey
func (h *Handlers) ConvertDepth(w http.ResponseWriter, req *http.Request) {
	well, ok := h.wellFromRequest(w, req)
	if !ok {
		return
	}

	if err := req.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	mdValue := req.PostFormValue("md")
	tvdValue := req.PostFormValue("tvd")
	if mdValue == "" && tvdValue == "" {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "provide either md or tvd to convert")
		return
	}

	svy, err := h.wellSurvey(well.ID)
	if err != nil {
		log.Errorf("error fetching survey stations for well %d: %v", well.ID, err)
		http.Error(w, "error fetching survey stations", http.StatusInternalServerError)
		return
	}

	if mdValue != "" {
		md, err := strconv.ParseFloat(mdValue, 64)
		if err != nil {
			h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid md provided")
			return
		}
		tvd, err := svy.TVDAt(md)
		if err != nil {
			h.formatter.WriteError(w, req, http.StatusBadRequest, "survey data unavailable for this well")
			return
		}
		h.formatter.WriteResponse(w, req, map[string]float64{"md": round3(md), "tvd": round3(tvd)}, nil)
		return
	}

	tvd, err := strconv.ParseFloat(tvdValue, 64)
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid tvd provided")
		return
	}
	md, err := svy.MDAt(tvd)
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "survey data unavailable for this well")
		return
	}
	h.formatter.WriteResponse(w, req, map[string]float64{"md": round3(md), "tvd": round3(tvd)}, nil)
}

// UploadSurvey handles a directional survey text upload, atomically
// replacing the well's stations
func (h *Handlers) UploadSurvey(w http.ResponseWriter, req *http.Request) {
	well, ok := h.wellFromRequest(w, req)
	if !ok {
		return
	}

	file, _, err := req.FormFile("survey_file")
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "no survey file provided")
		return
	}
	defer file.Close()

	stations, err := survey.ParseStations(file)
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "failed to parse survey: "+err.Error())
		return
	}

	batchID := uuid.NewString()
	for i := range stations {
		stations[i].ImportBatchID = batchID
	}

	if err := h.controller.DB.ReplaceSurveyStations(well.ID, stations); err != nil {
		log.Errorf("error replacing survey stations for well %d: %v", well.ID, err)
		http.Error(w, "error saving survey stations", http.StatusInternalServerError)
		return
	}

	log.Infof("imported %d survey stations for well %s (batch %s)", len(stations), well.Name, batchID)
	h.formatter.WriteResponse(w, req, map[string]any{
		"success":         true,
		"station_count":   len(stations),
		"import_batch_id": batchID,
	}, nil)
}

// PopulatePrognosisMD converts a well's planned prognosis depths (TVD)
// into MD through the stored survey and persists them
func (h *Handlers) PopulatePrognosisMD(w http.ResponseWriter, req *http.Request) {
	well, ok := h.wellFromRequest(w, req)
	if !ok {
		return
	}

	svy, err := h.wellSurvey(well.ID)
	if err != nil {
		log.Errorf("error fetching survey stations for well %d: %v", well.ID, err)
		http.Error(w, "error fetching survey stations", http.StatusInternalServerError)
		return
	}
	if svy.IsEmpty() {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "survey data not available for this well; upload survey data first")
		return
	}

	prognoses, err := h.controller.DB.GetPrognoses(well.ID)
	if err != nil {
		log.Errorf("error fetching prognoses for well %d: %v", well.ID, err)
		http.Error(w, "error fetching prognoses", http.StatusInternalServerError)
		return
	}

	updated := 0
	for i := range prognoses {
		p := &prognoses[i]
		changed := false
		if p.PlannedDepthStart != nil {
			if md, err := svy.MDAt(*p.PlannedDepthStart); err == nil {
				rounded := round2(md)
				p.MDDepthStart = &rounded
				changed = true
			}
		}
		if p.PlannedDepthEnd != nil {
			if md, err := svy.MDAt(*p.PlannedDepthEnd); err == nil {
				rounded := round2(md)
				p.MDDepthEnd = &rounded
				changed = true
			}
		}
		if !changed {
			continue
		}
		if err := h.controller.DB.SavePrognosisDepths(p); err != nil {
			log.Errorf("error saving prognosis %d: %v", p.ID, err)
			http.Error(w, "error saving prognosis depths", http.StatusInternalServerError)
			return
		}
		updated++
	}

	h.formatter.WriteResponse(w, req, map[string]any{
		"success":       true,
		"updated_count": updated,
		"total_count":   len(prognoses),
	}, nil)
}

// GetGasShows handles requests for one report's gas show measurements
func (h *Handlers) GetGasShows(w http.ResponseWriter, req *http.Request) {
	id, err := strconv.Atoi(mux.Vars(req)["id"])
	if err != nil {
		http.Error(w, "invalid report id", http.StatusBadRequest)
		return
	}

	rpt, err := h.controller.DB.GetReport(id)
	if err != nil {
		log.Errorf("error fetching report %d: %v", id, err)
		http.Error(w, "error fetching report", http.StatusInternalServerError)
		return
	}
	if rpt == nil {
		h.formatter.WriteError(w, req, http.StatusNotFound, "report not found")
		return
	}

	measurements, err := h.controller.DB.GetGasShowsByReports([]int{rpt.ID})
	if err != nil {
		log.Errorf("error fetching gas shows for report %d: %v", rpt.ID, err)
		http.Error(w, "error fetching gas shows", http.StatusInternalServerError)
		return
	}

	h.formatter.WriteResponse(w, req, map[string]any{
		"report": map[string]any{
			"id":   rpt.ID,
			"date": rpt.Date.Format(dateLayout),
		},
		"measurements":     measurements,
		"has_measurements": len(measurements) > 0,
	}, nil)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
