package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jhoicas/inventario-cli/internal/application/inventory"
	"github.com/jhoicas/inventario-cli/internal/application/report"
	"github.com/jhoicas/inventario-cli/internal/domain/repository"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/csvstore"
	"github.com/jhoicas/inventario-cli/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-cli/internal/interfaces/cli"
	"github.com/jhoicas/inventario-cli/pkg/config"
	"github.com/jhoicas/inventario-cli/pkg/logger"
)

var (
	flagCSV    string
	flagStrict bool

	rootCmd = &cobra.Command{
		Use:   "inventario",
		Short: "Rastreador de inventario local de un solo usuario",
		Long: `inventario mantiene un inventario en memoria con bitácora de
movimientos, persistencia a CSV plano, reportes agregados y un
gráfico de barras de niveles de stock.`,
		RunE: runMenu,
	}

	reportCmd = &cobra.Command{
		Use:   "report",
		Short: "Carga un CSV y muestra los reportes sin entrar al menú",
		RunE:  runReport,
	}

	chartCmd = &cobra.Command{
		Use:   "chart",
		Short: "Carga un CSV y dibuja el gráfico de niveles de stock",
		RunE:  runChart,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagCSV, "csv", "", "ruta del archivo CSV del inventario (por defecto INVENTORY_CSV_PATH)")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "rechazar ajustes que dejarían stock negativo")
	rootCmd.AddCommand(reportCmd, chartCmd)
}

// app agrupa la configuración y los casos de uso ya cableados.
type app struct {
	cfg       *config.Config
	log       *logger.Logger
	inventory *inventory.UseCase
	reports   *report.UseCase
	csvPath   string
}

// buildApp carga configuración, crea el logger con id de sesión y cablea
// almacenes en memoria, adaptador CSV, notificador y casos de uso.
func buildApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cargar configuración: %w", err)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).
		WithField("session", uuid.NewString())
	log.Info().Str("app", cfg.App.Name).Str("env", cfg.App.Env).Msg("iniciando aplicación")

	strict := cfg.Stock.Strict
	if cmd.Flags().Changed("strict") {
		strict = flagStrict
	}
	csvPath := cfg.Stock.CSVPath
	if flagCSV != "" {
		csvPath = flagCSV
	}

	products := memory.NewProductRepository()
	movements := memory.NewMovementLog()
	notifier := cli.NewAlertNotifier(os.Stdout)
	files := csvstore.NewInventoryFile(log)
	newStore := func() repository.ProductRepository { return memory.NewProductRepository() }

	inv := inventory.NewUseCase(products, movements, notifier, files, newStore, strict, log)
	rep := report.NewUseCase(inv, inv, log)

	return &app{cfg: cfg, log: log, inventory: inv, reports: rep, csvPath: csvPath}, nil
}

func runMenu(cmd *cobra.Command, _ []string) error {
	a, err := buildApp(cmd)
	if err != nil {
		return err
	}
	menu := cli.NewMenu(a.inventory, a.reports, os.Stdout, a.csvPath)
	return menu.Run()
}

// runReport carga el CSV indicado y muestra valor total y rotación. La
// bitácora arranca vacía en modo headless, así que la rotación reporta 0
// para todos; sigue siendo útil para revisar el valor del inventario.
func runReport(cmd *cobra.Command, _ []string) error {
	a, err := buildApp(cmd)
	if err != nil {
		return err
	}
	if err := a.inventory.ImportCSV(a.csvPath); err != nil {
		return err
	}
	fmt.Println(cli.RenderReports(a.reports.TotalInventoryValue(), a.reports.TurnoverReport()))
	return nil
}

func runChart(cmd *cobra.Command, _ []string) error {
	a, err := buildApp(cmd)
	if err != nil {
		return err
	}
	if err := a.inventory.ImportCSV(a.csvPath); err != nil {
		return err
	}
	fmt.Println(cli.RenderStockChart(a.inventory.StockLevels()))
	return nil
}
