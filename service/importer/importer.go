package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
	"gorm.io/gorm"

	inventoryRepo "supplysense/model/repository/inventory"
	salesRepo "supplysense/model/repository/sales"
	"supplysense/service/balancing"
)

var (
	ErrUnknownTable   = errors.New("unknown table")
	ErrUnknownCharset = errors.New("unknown charset")
)

// ImportOptions configures an import run.
type ImportOptions struct {
	Table     string
	BatchSize int
	// Charset of the source file: "", "utf-8", "windows-1252" or "iso-8859-1".
	Charset string
}

// ImportResult holds counters and timing from an import run.
type ImportResult struct {
	Table       string        `json:"table"`
	TotalRows   int           `json:"total_rows"`
	Imported    int           `json:"imported"`
	Skipped     int           `json:"skipped"`
	Warnings    []string      `json:"warnings"`
	ProcessTime time.Duration `json:"process_time"`
	DBTime      time.Duration `json:"db_time"`
	TotalTime   time.Duration `json:"total_time"`
}

func (res *ImportResult) accept(p *rowParser) bool {
	res.Warnings = append(res.Warnings, p.warnings...)
	if p.failed {
		res.Skipped++
		return false
	}
	return true
}

// decodeReader wraps r so single-byte encodings arrive as UTF-8.
func decodeReader(r io.Reader, charset string) (io.Reader, error) {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return r, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder().Reader(r), nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1.NewDecoder().Reader(r), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCharset, charset)
	}
}

// ImportCSV reads a CSV with a header row from r and appends its rows to
// opts.Table. Inventory rows upsert on (item, warehouse).
func ImportCSV(ctx context.Context, db *gorm.DB, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	start := time.Now()
	if err := checkTable(opts.Table); err != nil {
		return nil, err
	}
	src, err := decodeReader(r, opts.Charset)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	lines, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV rows: %w", err)
	}

	res := &ImportResult{Table: opts.Table}
	columns := mapHeaders(opts.Table, headers, res)
	rows := make([]record, 0, len(lines))
	for _, line := range lines {
		rec := make(record, len(columns))
		for i, col := range columns {
			if col == "" || i >= len(line) {
				continue
			}
			rec[col] = line[i]
		}
		rows = append(rows, rec)
	}
	return load(ctx, db, rows, opts, res, start)
}

// ImportRecords appends decoded JSON objects to opts.Table.
func ImportRecords(ctx context.Context, db *gorm.DB, items []map[string]interface{}, opts ImportOptions) (*ImportResult, error) {
	start := time.Now()
	if err := checkTable(opts.Table); err != nil {
		return nil, err
	}
	res := &ImportResult{Table: opts.Table}
	known := knownColumns(opts.Table)
	unknown := make(map[string]bool)

	rows := make([]record, 0, len(items))
	for _, item := range items {
		rec := make(record, len(item))
		for k, v := range item {
			col := NormalizeHeader(opts.Table, k)
			if !known[col] {
				if !unknown[k] {
					unknown[k] = true
					res.Warnings = append(res.Warnings, fmt.Sprintf("column %q: unknown, skipping", k))
				}
				continue
			}
			rec[col] = stringify(v)
		}
		rows = append(rows, rec)
	}
	return load(ctx, db, rows, opts, res, start)
}

// mapHeaders returns the normalized column per CSV position; unknown
// columns map to "".
func mapHeaders(table string, headers []string, res *ImportResult) []string {
	known := knownColumns(table)
	columns := make([]string, len(headers))
	for i, h := range headers {
		col := NormalizeHeader(table, h)
		if !known[col] {
			res.Warnings = append(res.Warnings, fmt.Sprintf("column %q: unknown, skipping", strings.TrimSpace(h)))
			continue
		}
		columns[i] = col
	}
	return columns
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

func load(ctx context.Context, db *gorm.DB, rows []record, opts ImportOptions, res *ImportResult, start time.Time) (*ImportResult, error) {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 500
	}
	res.TotalRows = len(rows)
	startProcess := time.Now()

	var write func() error
	switch opts.Table {
	case TableOrders:
		orders := buildOrders(rows, res)
		res.Imported = len(orders)
		write = func() error {
			return salesRepo.NewOrderRepository(db).CreateInBatches(ctx, orders, opts.BatchSize)
		}
	case TableInventory:
		inv := buildInventory(rows, res)
		res.Imported = len(inv)
		write = func() error {
			repo, err := inventoryRepo.NewInventoryRepository(db)
			if err != nil {
				return err
			}
			return repo.Upsert(ctx, inv, opts.BatchSize)
		}
	case TableSuppliers:
		suppliers := buildSuppliers(rows, res)
		res.Imported = len(suppliers)
		write = func() error {
			return inventoryRepo.NewReferenceRepository(db).CreateSuppliers(ctx, suppliers, opts.BatchSize)
		}
	case TableCapacity:
		machines := buildCapacity(rows, res)
		res.Imported = len(machines)
		write = func() error {
			return inventoryRepo.NewReferenceRepository(db).CreateCapacity(ctx, machines, opts.BatchSize)
		}
	case TableSupplyPool:
		pool := buildSupplyPool(rows, res)
		res.Imported = len(pool)
		write = func() error {
			return inventoryRepo.NewSupplyPoolRepository(db).CreateInBatches(ctx, pool, opts.BatchSize)
		}
	}
	res.ProcessTime = time.Since(startProcess)

	startDB := time.Now()
	if err := write(); err != nil {
		return nil, fmt.Errorf("import %s: %w", opts.Table, err)
	}
	res.DBTime = time.Since(startDB)

	if res.Imported > 0 && opts.Table != TableSuppliers {
		balancing.Invalidate(ctx)
	}
	res.TotalTime = time.Since(start)
	return res, nil
}
