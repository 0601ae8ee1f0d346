package graphqlserver

import (
	"math"
	"strconv"
	"time"

	gql "github.com/graph-gophers/graphql-go"

	gqlmodels "supplysense/graphql/models"
	planningEntity "supplysense/model/entity/planning"
	"supplysense/service/balancing"
	"supplysense/service/capacity"
	"supplysense/service/forecast"
	"supplysense/service/fulfilment"
	"supplysense/service/kpi"
)

// int32Of clamps quantities into the GraphQL Int range.
func int32Of(n int64) int32 {
	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < math.MinInt32:
		return math.MinInt32
	}
	return int32(n)
}

func toBalanceRow(r balancing.Row) *gqlmodels.BalanceRow {
	recs := r.Recommendations
	if recs == nil {
		recs = []string{}
	}
	return &gqlmodels.BalanceRow{
		Item:            r.Item,
		Warehouse:       r.Warehouse,
		Category:        r.Category,
		OnHand:          int32Of(r.OnHand),
		WIP:             int32Of(r.WIP),
		Safety:          int32Of(r.Safety),
		ForecastDemand:  int32Of(r.ForecastDemand),
		AvailableStock:  int32Of(r.AvailableStock),
		ProjectedStock:  int32Of(r.ProjectedStock),
		Action:          string(r.Action),
		Recommendations: recs,
	}
}

func toBalanceRows(rows []balancing.Row) []*gqlmodels.BalanceRow {
	out := make([]*gqlmodels.BalanceRow, len(rows))
	for i, r := range rows {
		out[i] = toBalanceRow(r)
	}
	return out
}

func toBalanceReport(rep *balancing.Report) *gqlmodels.BalanceReport {
	recs := make([]*gqlmodels.Recommendation, len(rep.Recommendations))
	for i, r := range rep.Recommendations {
		recs[i] = &gqlmodels.Recommendation{Action: r.Action, Item: r.Item, Bucket: string(r.Bucket)}
	}
	return &gqlmodels.BalanceReport{
		Persona:         rep.Persona,
		SafetyStock:     int32Of(rep.SafetyStock),
		PromoteFactor:   rep.Thresholds.PromoteFactor,
		ReduceFactor:    rep.Thresholds.ReduceFactor,
		Rows:            toBalanceRows(rep.Rows),
		Recommendations: recs,
		GeneratedAt:     rep.GeneratedAt.Format(time.RFC3339),
	}
}

func toFulfilmentPlan(p fulfilment.Plan) *gqlmodels.FulfilmentPlan {
	lines := make([]*gqlmodels.Allocation, len(p.Allocations))
	for i, a := range p.Allocations {
		lines[i] = &gqlmodels.Allocation{Source: a.Source, AllocatedQty: int32Of(a.Qty), Contact: a.Contact}
	}
	return &gqlmodels.FulfilmentPlan{
		Item:        p.Item,
		Requested:   int32Of(p.Requested),
		Allocated:   int32Of(p.Allocated()),
		Shortage:    int32Of(p.Shortage),
		Allocations: lines,
	}
}

func toCapacityReport(r capacity.Report) *gqlmodels.CapacityReport {
	out := &gqlmodels.CapacityReport{
		Demand:      int32Of(r.Demand),
		Capacity:    int32Of(r.Capacity),
		Utilization: r.Utilization,
		Alerts:      r.Alerts,
	}
	if out.Alerts == nil {
		out.Alerts = []string{}
	}
	if !r.Empty() {
		level := string(r.Level)
		out.Level = &level
	}
	return out
}

func toKpis(s kpi.Summary) *gqlmodels.Kpis {
	return &gqlmodels.Kpis{
		Revenue:        s.Revenue.StringFixed(2),
		InventoryValue: s.InventoryValue.StringFixed(2),
		ServiceLevel:   s.ServiceLevel,
		FactoryLoad:    s.FactoryLoad,
		Orders:         int32(s.Orders),
	}
}

func toForecast(points []forecast.Point) []*gqlmodels.ForecastPoint {
	out := make([]*gqlmodels.ForecastPoint, len(points))
	for i, p := range points {
		out[i] = &gqlmodels.ForecastPoint{
			Date:     p.Date.Format("2006-01-02"),
			Qty:      int32Of(p.Qty),
			Forecast: p.Forecast,
		}
	}
	return out
}

func toActionLog(entries []planningEntity.ActionLogEntry) []*gqlmodels.ActionLogEntry {
	out := make([]*gqlmodels.ActionLogEntry, len(entries))
	for i, e := range entries {
		out[i] = &gqlmodels.ActionLogEntry{
			ID:        gql.ID(strconv.FormatUint(uint64(e.ID), 10)),
			Action:    e.Action,
			Item:      e.Item,
			Decision:  e.Decision,
			Timestamp: e.Timestamp.Format(time.RFC3339),
		}
	}
	return out
}

func toPlanningParams(p planningEntity.PlanningParams, concern string) *gqlmodels.PlanningParams {
	out := &gqlmodels.PlanningParams{
		Persona:     p.Persona,
		SafetyStock: int32Of(p.SafetyStock),
		LeadTime:    int32Of(p.LeadTime),
		MOQ:         int32Of(p.MOQ),
	}
	if concern != "" {
		out.Concern = &concern
	}
	return out
}
