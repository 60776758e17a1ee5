// Package build handles the end-to-end statement build
package build

import (
	"errors"
	"path/filepath"
	"time"

	"netc/ar-statements/cmd/root"
	"netc/ar-statements/internal/aging"
	"netc/ar-statements/internal/common"
	"netc/ar-statements/internal/config"
	"netc/ar-statements/internal/currencyutils"
	"netc/ar-statements/internal/dateutils"
	"netc/ar-statements/internal/fileutils"
	"netc/ar-statements/internal/parsererror"
	"netc/ar-statements/internal/render"
	"netc/ar-statements/internal/report"
	"netc/ar-statements/internal/scanner"
	"netc/ar-statements/internal/workbook"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	asOfFlag    string
	logoFlag    string
	aliasesFlag string
	zipFlag     bool
	noZipFlag   bool
)

// Cmd represents the build command
var Cmd = &cobra.Command{
	Use:   "build",
	Short: "Build per-customer statements from an AR export CSV",
	Long: `Build runs the whole pipeline: read the AR export, normalize and bucket
every row, then write per-customer statement pages, email drafts, a searchable
index, a summary workbook, the send-statements control file and a rejected-rows
report under the output directory.

When --input is omitted the likeliest export is auto-detected from the current
directory, ./input and ~/Downloads.

Example:
  ar-statements build -i ar_aging_detail.csv -o Customer_Statements --as-of 2026-08-31`,
	Run: buildFunc,
}

func init() {
	Cmd.Flags().StringVar(&asOfFlag, "as-of", "", "Reference date for aging math (YYYY-MM-DD, default today)")
	Cmd.Flags().StringVar(&logoFlag, "logo", "", "Logo image source embedded in statements (overrides config)")
	Cmd.Flags().StringVar(&aliasesFlag, "aliases", "", "YAML file with extra column aliases (overrides config)")
	Cmd.Flags().BoolVar(&zipFlag, "zip", false, "Zip the output directory after the build")
	Cmd.Flags().BoolVar(&noZipFlag, "no-zip", false, "Skip the zip bundle even when config enables it")
}

func buildFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Build command called")

	cfg, err := config.InitializeConfig()
	if err != nil {
		root.Log.Fatalf("Failed to load configuration: %v", err)
	}
	root.Log = config.ConfigureLoggingFromConfig(cfg)

	asOf := time.Now()
	if asOfFlag != "" {
		parsed, err := dateutils.ParseDate(asOfFlag)
		if err != nil || parsed.IsZero() {
			root.Log.Fatalf("Invalid --as-of date %q: expected YYYY-MM-DD", asOfFlag)
		}
		asOf = parsed
	}

	input := root.SharedFlags.Input
	if input == "" {
		input = scanner.AutoDetect(scanner.DefaultSearchDirs())
		if input == "" {
			root.Log.Fatal("No input file given and no AR export found; pass one with --input")
		}
		root.Log.Infof("Auto-detected input file: %s", input)
	}

	outRoot := root.SharedFlags.Output
	if outRoot == "" {
		outRoot = cfg.Output.Root
	}

	aliasFile := cfg.Schema.AliasFile
	if aliasesFlag != "" {
		aliasFile = aliasesFlag
	}

	table, err := common.ReadRawTable(input)
	if err != nil {
		root.Log.Fatalf("Failed to read input file: %v", err)
	}

	result, err := aging.Run(table, aging.Options{AsOf: asOf, AliasFile: aliasFile})
	if err != nil {
		var missing *parsererror.MissingColumnsError
		if errors.As(err, &missing) {
			root.Log.Fatalf("Input does not look like an AR export: %v", err)
		}
		root.Log.Fatalf("Pipeline failed: %v", err)
	}

	company := render.Company{
		Name:      cfg.Company.Name,
		Email:     cfg.Company.Email,
		Phone:     cfg.Company.Phone,
		Address:   cfg.Company.Address,
		RemitTo:   cfg.Company.RemitTo,
		PayNowURL: cfg.Company.PayNowURL,
		LogoSrc:   cfg.Company.LogoSrc,
	}
	if logoFlag != "" {
		company.LogoSrc = logoFlag
	}

	runID := uuid.New().String()
	if err := writeArtifacts(result, company, outRoot, runID); err != nil {
		root.Log.Fatalf("Failed to write output: %v", err)
	}

	doZip := cfg.Output.Zip || zipFlag
	if noZipFlag {
		doZip = false
	}
	if doZip {
		zipPath := outRoot + ".zip"
		if err := fileutils.ZipDirectory(outRoot, zipPath); err != nil {
			root.Log.Fatalf("Failed to zip output directory: %v", err)
		}
		root.Log.Infof("Zipped output to %s", zipPath)
	}

	root.Log.Infof("Built statements for %d customers from %d rows in %s (run %s)",
		len(result.Summaries), len(result.Admitted), outRoot, runID)
}

// writeArtifacts renders and writes every build output under outRoot. The
// statement pages go first so summaries carry their paths before the index,
// control file and workbook are produced.
func writeArtifacts(result *aging.Result, company render.Company, outRoot, runID string) error {
	if err := fileutils.EnsureDirectoryExists(outRoot); err != nil {
		return err
	}

	asOfISO := result.AsOf.Format("2006-01-02")
	asOfCompact := result.AsOf.Format("20060102")

	for _, summary := range result.Summaries {
		dir := filepath.Join(outRoot, render.CustomerDirName(summary.Customer))
		if err := fileutils.EnsureDirectoryExists(dir); err != nil {
			return err
		}

		data := render.BuildStatementData(company, summary, result.Admitted, asOfISO)
		page, err := render.Statement(data)
		if err != nil {
			return err
		}
		stmtPath := filepath.Join(dir, render.StatementFileName(summary.Customer, asOfCompact))
		if err := fileutils.WriteFile(stmtPath, page); err != nil {
			return err
		}
		summary.StatementPath = stmtPath

		draft, err := render.Email(render.EmailData{
			Company:     company,
			AsOf:        asOfISO,
			Customer:    summary.Customer,
			TotalDueFmt: data.TotalDueFmt,
		})
		if err != nil {
			return err
		}
		if err := fileutils.WriteFile(filepath.Join(dir, "email_template.txt"), draft); err != nil {
			return err
		}
	}

	indexPage, err := render.Index(render.IndexData{
		Company:       company,
		AsOf:          asOfISO,
		Rows:          report.IndexEntries(result.Summaries, outRoot),
		GrandTotal:    result.GrandTotal.StringFixed(2),
		GrandTotalFmt: currencyutils.FormatUSD(result.GrandTotal),
	})
	if err != nil {
		return err
	}
	if err := fileutils.WriteFile(filepath.Join(outRoot, "index.html"), indexPage); err != nil {
		return err
	}

	if err := report.WriteSendStatements(result.Summaries, asOfISO, filepath.Join(outRoot, "send_statements.csv")); err != nil {
		return err
	}
	if err := report.WriteCleanDetail(result.Admitted, filepath.Join(outRoot, "Detail_Clean.csv")); err != nil {
		return err
	}
	if len(result.Rejected) > 0 {
		if err := report.WriteRejectedRows(result.Table, result.Rejected, filepath.Join(outRoot, "_rejected_rows.csv")); err != nil {
			return err
		}
	}

	return workbook.Write(result, runID, filepath.Join(outRoot, "Aging_Summary.xlsx"))
}
