// Command export-report builds one export for an organisation straight from
// Firestore and writes it as an XLSX file.
//
//	export-report -tenant=speelplein-x -kind=fiscal-certificates -year=2020
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"camp-admin/backend/internal/config"
	"camp-admin/backend/internal/domain/attendance"
	"camp-admin/backend/internal/domain/child"
	"camp-admin/backend/internal/domain/contact"
	"camp-admin/backend/internal/domain/crew"
	"camp-admin/backend/internal/domain/export"
	"camp-admin/backend/internal/domain/shift"
	"camp-admin/backend/internal/firebase"
	"camp-admin/backend/internal/logging"
	"camp-admin/backend/internal/report"
	ss "camp-admin/backend/internal/spreadsheet"
	"camp-admin/backend/internal/utils"
)

func main() {
	tenant := flag.String("tenant", "", "organisation (tenant) id")
	kind := flag.String("kind", "", "export kind: "+kindList())
	year := flag.String("year", "", "year, for yearly exports")
	day := flag.String("day", "", "day as YYYY-MM-DD, for day-overview")
	out := flag.String("out", "", "output file (default: export name + .xlsx)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log := logging.New(os.Stderr, cfg.Env)

	if err := run(context.Background(), log, cfg, *tenant, *kind, *year, *day, *out); err != nil {
		log.Error("export failed", logging.Err(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger, cfg config.Config, tenant, kind, year, day, out string) error {
	if strings.TrimSpace(tenant) == "" {
		return fmt.Errorf("tenant is required: -tenant=xxxxx")
	}
	req, err := export.ParseRequest(kind, year, day)
	if err != nil {
		return err
	}

	fs, err := firebase.NewFirestore(ctx, cfg.ProjectID)
	if err != nil {
		return err
	}
	defer fs.Close()

	svc := export.NewService(
		child.NewRepo(fs),
		crew.NewRepo(fs),
		contact.NewRepo(fs),
		shift.NewRepo(fs),
		attendance.NewService(attendance.NewRepo(fs)),
		report.NewBuilder(log),
	)

	data, err := svc.Build(ctx, tenant, req)
	if err != nil {
		return err
	}

	if out == "" {
		out = utils.AttachmentName(data.Filename, ".xlsx")
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := ss.WriteXLSX(f, data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Info("export written", slog.String("file", out), slog.String("kind", string(req.Kind)))
	return nil
}

func kindList() string {
	kinds := export.Kinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, string(k))
	}
	return strings.Join(names, ", ")
}
