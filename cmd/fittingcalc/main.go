package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/zhukovvlad/fittings-go/cmd/internal/config"
	"github.com/zhukovvlad/fittings-go/cmd/internal/item"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/calculation"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/dataset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/effort"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/material"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/resolver"
	"github.com/zhukovvlad/fittings-go/cmd/internal/services/ruleset"
	"github.com/zhukovvlad/fittings-go/cmd/internal/util"
	"github.com/zhukovvlad/fittings-go/cmd/pkg/logging"
)

func main() {
	logger := logging.GetLogger()

	if err := godotenv.Load(); err != nil {
		logger.Debugf("error loading .env file: %v", err)
	}

	var (
		configPath = flag.String("config", "", "путь к config.yml (по умолчанию CONFIG_PATH или ./cmd/config/config.yml)")
		csvPath    = flag.String("csv", "", "CSV справочника (по умолчанию из конфигурации)")
		typeID     = flag.String("type", "", "код типа, например 2110")
		grade      = flag.String("material", "", "марка материала")
		quantity   = flag.String("qty", "1", "количество")
		dn1        = flag.String("dn1", "", "наружный диаметр 1, мм")
		s1         = flag.String("s1", "", "толщина стенки 1, мм")
		dn2        = flag.String("dn2", "", "наружный диаметр 2, мм")
		s2         = flag.String("s2", "", "толщина стенки 2, мм")
		asJSON     = flag.Bool("json", false, "вывод в JSON даже в терминале")
	)
	flag.Parse()

	cfg := loadConfig(*configPath)
	if *csvPath != "" {
		cfg.Dataset.CSVPath = *csvPath
	}

	dispatcher := ruleset.NewDispatcher()
	ds, err := dataset.Load(context.Background(),
		dataset.NewCSVSource(cfg.Dataset.CSVPath, cfg.Dataset.CSVSeparator),
		dataset.NewBuilder(dispatcher, logger), logger)
	if err != nil {
		logger.Fatalf("error loading reference dataset: %v", err)
	}

	it := &item.PipeFittingItem{}
	fields := map[item.Column]string{
		item.ColumnTypeID:   *typeID,
		item.ColumnMaterial: *grade,
		item.ColumnQuantity: *quantity,
		item.ColumnDN1:      *dn1,
		item.ColumnS1:       *s1,
		item.ColumnDN2:      *dn2,
		item.ColumnS2:       *s2,
	}
	for col, raw := range fields {
		if raw == "" {
			continue
		}
		if err := it.Set(col, raw); err != nil {
			logger.Fatalf("invalid flag value: %v", err)
		}
	}

	res := resolver.NewResolver(dispatcher, ds, logger)
	svc := calculation.NewCalculationService(res, material.NewCalculator(logger), effort.NewCalculator(logger),
		calculation.Options{Workers: 1}, logger)
	calcErr := svc.CalculateItem(it)
	if calcErr != nil {
		it.Attributes.AddError(calcErr.Error())
	}

	if !*asJSON && term.IsTerminal(int(os.Stdout.Fd())) {
		printTable(os.Stdout, it)
	} else {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(it); err != nil {
			logger.Fatalf("error encoding result: %v", err)
		}
	}
	if calcErr != nil {
		os.Exit(1)
	}
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.GetConfig()
	}
	cfg, err := config.Load(path)
	if err != nil {
		logging.GetLogger().Fatalf("error reading config %s: %v", path, err)
	}
	return cfg
}

func printTable(w io.Writer, it *item.PipeFittingItem) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	a := it.Attributes
	fmt.Fprintf(tw, "typeId\t%s\n", it.TypeID)
	fmt.Fprintf(tw, "material\t%s\n", it.MaterialGrade())
	fmt.Fprintf(tw, "quantity\t%s\n", util.FloatPtrString(it.Quantity))
	fmt.Fprintf(tw, "dn1 x s1\t%s x %s\n", util.FloatPtrString(it.DN1), util.FloatPtrString(it.S1))
	if it.DN2 != nil || it.S2 != nil {
		fmt.Fprintf(tw, "dn2 x s2\t%s x %s\n", util.FloatPtrString(it.DN2), util.FloatPtrString(it.S2))
	}
	fmt.Fprintf(tw, "WEIGHT\t%s\n", util.FloatPtrString(a.Weight))
	fmt.Fprintf(tw, "STANDARD\t%s\n", util.Deref(a.Standard))
	fmt.Fprintf(tw, "PRICE_MATERIAL\t%s\n", util.FloatPtrString(a.PriceMaterial))
	if a.CalculationMaterial != nil {
		fmt.Fprintf(tw, "\t%s\n", a.CalculationMaterial.Formula)
	}
	fmt.Fprintf(tw, "EFFORD_HOURS\t%s\n", util.FloatPtrString(a.EffortHours))
	if a.CalculationEffortHours != nil {
		for _, step := range a.CalculationEffortHours.Steps {
			fmt.Fprintf(tw, "\t%s %s\t%g x %g = %g\n", step.Name, step.Size, step.EffortPerUnit, step.Quantity, step.Hours())
		}
	}
	for _, e := range a.Errors {
		fmt.Fprintf(tw, "ERROR\t%s\n", e)
	}
}
