package graphqlserver

import (
	"context"
	"encoding/json"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"gorm.io/gorm"

	"supplysense/graphql"
	gqlmodels "supplysense/graphql/models"
	"supplysense/graphql/registry"
	planningRepo "supplysense/model/repository/planning"
	"supplysense/service/balancing"
	"supplysense/service/capacity"
	"supplysense/service/forecast"
	"supplysense/service/fulfilment"
	"supplysense/service/kpi"
	"supplysense/service/planning"
)

// RootResolver resolves Query fields. Persona comes from the request context
// (Persona header / __Persona variable) unless an argument overrides it.
type RootResolver struct {
	balance    *balancing.Service
	fulfilment *fulfilment.Service
	capacity   *capacity.Service
	kpi        *kpi.Service
	forecast   *forecast.Service
	params     *planning.ParamsService
	audit      *planningRepo.AuditRepository
}

func NewRootResolver(db *gorm.DB) (*RootResolver, error) {
	bal, err := balancing.NewService(db)
	if err != nil {
		return nil, err
	}
	ful, err := fulfilment.NewService(db)
	if err != nil {
		return nil, err
	}
	k, err := kpi.NewService(db)
	if err != nil {
		return nil, err
	}
	return &RootResolver{
		balance:    bal,
		fulfilment: ful,
		capacity:   capacity.NewService(db),
		kpi:        k,
		forecast:   forecast.NewService(db),
		params:     planning.NewParamsService(db),
		audit:      planningRepo.NewAuditRepository(db),
	}, nil
}

func persona(ctx context.Context, arg *string) string {
	if arg != nil && *arg != "" {
		return *arg
	}
	return graphql.PersonaFromContext(ctx)
}

// PersonaArgs is shared by persona-scoped fields.
type PersonaArgs struct {
	Persona *string
}

func (r *RootResolver) Balance(ctx context.Context, args PersonaArgs) (*gqlmodels.BalanceReport, error) {
	rep, err := r.balance.Report(ctx, persona(ctx, args.Persona))
	if err != nil {
		return nil, err
	}
	return toBalanceReport(rep), nil
}

func (r *RootResolver) Stockouts(ctx context.Context, args PersonaArgs) ([]*gqlmodels.BalanceRow, error) {
	rep, err := r.balance.Report(ctx, persona(ctx, args.Persona))
	if err != nil {
		return nil, err
	}
	return toBalanceRows(rep.Stockouts()), nil
}

// FulfilmentPlanArgs matches fulfilmentPlan(item, qty).
type FulfilmentPlanArgs struct {
	Item string
	Qty  int32
}

func (r *RootResolver) FulfilmentPlan(ctx context.Context, args FulfilmentPlanArgs) (*gqlmodels.FulfilmentPlan, error) {
	plan, err := r.fulfilment.Plan(ctx, args.Item, int64(args.Qty))
	if err != nil {
		return nil, err
	}
	return toFulfilmentPlan(plan), nil
}

func (r *RootResolver) Capacity(ctx context.Context) (*gqlmodels.CapacityReport, error) {
	rep, err := r.capacity.Report(ctx)
	if err != nil {
		return nil, err
	}
	return toCapacityReport(rep), nil
}

func (r *RootResolver) Kpis(ctx context.Context) (*gqlmodels.Kpis, error) {
	s, err := r.kpi.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return toKpis(s), nil
}

func (r *RootResolver) Forecast(ctx context.Context) ([]*gqlmodels.ForecastPoint, error) {
	points, err := r.forecast.Daily(ctx)
	if err != nil {
		return nil, err
	}
	return toForecast(points), nil
}

// ActionsArgs matches actions(limit) (default in schema: 50).
type ActionsArgs struct {
	Limit int32
}

func (r *RootResolver) Actions(ctx context.Context, args ActionsArgs) ([]*gqlmodels.ActionLogEntry, error) {
	entries, err := r.audit.Actions(ctx, int(args.Limit))
	if err != nil {
		return nil, err
	}
	return toActionLog(entries), nil
}

func (r *RootResolver) PlanningParams(ctx context.Context, args PersonaArgs) (*gqlmodels.PlanningParams, error) {
	p, err := r.params.Resolve(ctx, persona(ctx, args.Persona))
	if err != nil {
		return nil, err
	}
	return toPlanningParams(p, planning.Personas[p.Persona]), nil
}

// ExtensionArgs for _extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *RootResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(db *gorm.DB) (*gql.Schema, error) {
	root, err := NewRootResolver(db)
	if err != nil {
		return nil, err
	}
	return gql.ParseSchema(graphql.Schema(), root, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
