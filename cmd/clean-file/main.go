package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"contactcleaner/internal/contacts"
	"contactcleaner/internal/export"
	"contactcleaner/internal/source"
	"contactcleaner/pkg/utils"
)

// Offline one-shot cleaner: same pipeline as the API server, no server
// required.
func main() {
	var (
		in     = flag.String("in", "", "input file (.csv, .xlsx, .xls, .pst)")
		out    = flag.String("out", "", "output path, .xlsx or .csv (default cleaned_<stem>.xlsx)")
		policy = flag.String("policy", "", "dedup policy: full-address (default) or exact-local")
	)
	flag.Parse()

	if *in == "" {
		log.Fatal("-in is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cleanCfg := utils.LoadCleanConfig()
	reader := source.Reader{ReadpstPath: cleanCfg.ReadpstPath}

	records, err := reader.Read(ctx, *in, filepath.Base(*in))
	if err != nil {
		log.Fatalf("read input failed: %v", err)
	}

	chosen := *policy
	if chosen == "" {
		chosen = cleanCfg.DedupPolicy
	}

	sum := contacts.Clean(records, contacts.Options{Policy: contacts.ParsePolicy(chosen)})
	if len(sum.Contacts) == 0 {
		log.Fatalf("no contacts found in %s (%d records, %d rejected)", *in, sum.Total, sum.RejectedTotal())
	}

	dest := *out
	if dest == "" {
		stem := strings.TrimSuffix(filepath.Base(*in), filepath.Ext(*in))
		dest = "cleaned_" + stem + ".xlsx"
	}

	f, err := os.Create(dest)
	if err != nil {
		log.Fatalf("create output failed: %v", err)
	}
	write := export.WriteXLSX
	if strings.EqualFold(filepath.Ext(dest), ".csv") {
		write = export.WriteCSV
	}
	if err := write(f, sum.Contacts); err != nil {
		_ = f.Close()
		log.Fatalf("export failed: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("close output failed: %v", err)
	}

	log.Printf("✅ wrote %d unique contacts to %s (%d records, %d duplicates removed, %d rejected)",
		len(sum.Contacts), dest, sum.Total, sum.Duplicates, sum.RejectedTotal())
}
