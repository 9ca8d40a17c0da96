// Command seedhsn loads HSN codes relevant to a jewellery business from the
// GST HSN/SAC master workbook. Goods rows are filtered by chapter prefix and
// job-work SAC rows are kept for karigar making charges.
//
// Usage:
//
//	go run ./cmd/seedhsn -file hsn_master.xlsx            # writes db/seeds/hsn_codes.sql
//	go run ./cmd/seedhsn -file hsn_master.xlsx -apply     # upserts into the database
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/cloudpospro-design/gold-jwellery-erp/internal/config"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/logger"
	"github.com/cloudpospro-design/gold-jwellery-erp/internal/repository/postgres"
)

const (
	batchSize     = 200
	effectiveFrom = "2017-07-01"
)

type hsnRow struct {
	Code        string  `db:"code"`
	Description string  `db:"description"`
	GSTRate     float64 `db:"gst_rate"`
	ParentCode  *string `db:"parent_code"`
}

func main() {
	file := flag.String("file", "", "path to the HSN/SAC master workbook")
	out := flag.String("out", "db/seeds/hsn_codes.sql", "SQL file to write when -apply is not set")
	chapters := flag.String("chapters", "71", "comma separated HSN prefixes to keep")
	sac := flag.String("sac", "9988", "comma separated SAC prefixes to keep, empty to skip services")
	apply := flag.Bool("apply", false, "upsert rows into the configured database")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log).WithField("cmd", "seedhsn")

	if *file == "" {
		log.Fatal("-file is required")
	}

	rows, err := readWorkbook(*file, splitList(*chapters), splitList(*sac))
	if err != nil {
		log.WithError(err).Fatal("read workbook")
	}
	log.WithField("rows", len(rows)).Info("workbook parsed")

	if *apply {
		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			log.WithError(err).Fatal("connect database")
		}
		defer db.Close()
		if err := upsert(context.Background(), db, rows); err != nil {
			log.WithError(err).Fatal("upsert hsn codes")
		}
		log.Info("hsn codes applied")
		return
	}

	if err := writeSQL(*out, rows); err != nil {
		log.WithError(err).Fatal("write seed file")
	}
	log.WithFields(logrus.Fields{"path": *out, "batches": (len(rows) + batchSize - 1) / batchSize}).Info("seed file written")
}

func readWorkbook(path string, chapters, sacPrefixes []string) ([]hsnRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	seen := make(map[string]bool)
	var rows []hsnRow

	goods, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read goods sheet: %w", err)
	}
	// Goods sheet: F=4 digit, H=desc, I=6 digit, J=desc, K=8 digit, M=desc, N=rate.
	for i := 5; i < len(goods); i++ {
		r := goods[i]
		rate, ok := parsePercent(cell(r, 13))
		if !ok {
			continue
		}
		for _, pair := range [][2]int{{10, 12}, {8, 9}, {5, 7}} {
			code := strings.TrimSpace(cell(r, pair[0]))
			if isDigits(code) && hasPrefix(code, chapters) {
				rows = add(rows, seen, code, cell(r, pair[1]), rate)
			}
		}
	}

	if len(sacPrefixes) == 0 {
		return rows, nil
	}
	services, err := f.GetRows("SAC_Master")
	if err != nil {
		// Older workbooks ship without the services sheet.
		return rows, nil
	}
	for i := 3; i < len(services); i++ {
		r := services[i]
		for _, rate := range sacRates(cell(r, 4)) {
			for _, pair := range [][2]int{{2, 3}, {0, 1}} {
				code := strings.TrimSpace(cell(r, pair[0]))
				if isDigits(code) && hasPrefix(code, sacPrefixes) {
					rows = add(rows, seen, code, cell(r, pair[1]), rate)
				}
			}
		}
	}
	return rows, nil
}

var percentRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)

func parsePercent(s string) (float64, bool) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	// excelize returns percentage cells as fractions when unformatted.
	if v > 0 && v < 1 {
		v *= 100
	}
	return v, true
}

// sacRates pulls every distinct rate out of free text such as
// "5% (without ITC) or 18%". "Exempt" and "Nil" map to 0.
func sacRates(s string) []float64 {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return nil
	case "exempt", "nil":
		return []float64{0}
	}
	var out []float64
	seen := map[float64]bool{}
	for _, m := range percentRe.FindAllStringSubmatch(s, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func add(rows []hsnRow, seen map[string]bool, code, desc string, rate float64) []hsnRow {
	key := fmt.Sprintf("%s|%.2f", code, rate)
	if seen[key] {
		return rows
	}
	seen[key] = true
	row := hsnRow{Code: code, Description: strings.TrimSpace(desc), GSTRate: rate}
	if len(code) > 4 {
		parent := code[:4]
		row.ParentCode = &parent
	}
	return append(rows, row)
}

func upsert(ctx context.Context, db *sqlx.DB, rows []hsnRow) error {
	const q = `INSERT INTO hsn_codes (code, description, gst_rate, parent_code, effective_from)
		VALUES (:code, :description, :gst_rate, :parent_code, '` + effectiveFrom + `')
		ON CONFLICT (code, gst_rate, condition_desc, effective_from)
		DO UPDATE SET description = EXCLUDED.description`

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	for i := 0; i < len(rows); i += batchSize {
		end := min(i+batchSize, len(rows))
		if _, err := tx.NamedExecContext(ctx, q, rows[i:end]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("batch at %d: %w", i, err)
		}
	}
	return tx.Commit()
}

func writeSQL(path string, rows []hsnRow) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "-- HSN/SAC seed for jewellery: %d rows.\nBEGIN;\n\n", len(rows))
	for i := 0; i < len(rows); i += batchSize {
		end := min(i+batchSize, len(rows))
		b.WriteString("INSERT INTO hsn_codes (code, description, gst_rate, parent_code, effective_from) VALUES\n")
		for j, r := range rows[i:end] {
			if j > 0 {
				b.WriteString(",\n")
			}
			parent := "NULL"
			if r.ParentCode != nil {
				parent = quote(*r.ParentCode)
			}
			fmt.Fprintf(&b, "  (%s, %s, %.2f, %s, '%s')", quote(r.Code), quote(r.Description), r.GSTRate, parent, effectiveFrom)
		}
		b.WriteString("\nON CONFLICT (code, gst_rate, condition_desc, effective_from) DO NOTHING;\n\n")
	}
	b.WriteString("COMMIT;\n")
	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func hasPrefix(code string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(code, p) {
			return true
		}
	}
	return false
}

func cell(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
