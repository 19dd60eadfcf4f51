package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wipefile_enterprise/internal/config"
	"wipefile_enterprise/internal/logging"
	"wipefile_enterprise/internal/progress"
	"wipefile_enterprise/internal/reporting"
	"wipefile_enterprise/internal/security"
	"wipefile_enterprise/internal/wipe"
)

const (
	Version = "1.0.0"
	AppName = "WipeFile Enterprise"

	// Exit codes
	EXIT_SUCCESS = 0
	EXIT_ERROR   = 1
)

var (
	cfg        *config.Config
	logger     *logging.EnterpriseLogger
	dryRun     bool
	verbose    bool
	configPath string
	profile    string
	passes     int
	recursive  bool
	force      bool
)

// CLI команды
var rootCmd = &cobra.Command{
	Use:     "wipefile",
	Short:   "WipeFile Enterprise - утилита безопасного удаления файлов",
	Long:    "Enterprise утилита необратимого удаления файлов и директорий: многопроходная перезапись случайными данными, усечение, переименование и удаление",
	Version: Version,
}

var wipeCmd = &cobra.Command{
	Use:   "wipe [цели]",
	Short: "Безопасно затереть указанные файлы и директории",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWipe,
}

var planCmd = &cobra.Command{
	Use:   "plan [цели]",
	Short: "Показать план затирания без выполнения",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPlan,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "n", false, "Тестовый режим")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Подробный вывод")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Путь к конфигурации")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "Профиль затирания (quick/standard/dod/paranoid/gutmann)")

	wipeCmd.Flags().IntVarP(&passes, "passes", "p", 0, "Количество проходов перезаписи (0 = из конфигурации)")
	wipeCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Рекурсивная обработка директорий")
	wipeCmd.Flags().BoolVarP(&force, "force", "f", false, "Продолжать при ошибках и пропустить подтверждение")

	planCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Рекурсивная обработка директорий")
	planCmd.Flags().BoolVarP(&force, "force", "f", false, "Продолжать планирование при ошибках")

	rootCmd.AddCommand(wipeCmd, planCmd)
}

// setup загружает конфигурацию, применяет профиль и создаёт логгер
func setup() error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("невалидная конфигурация: %w", err)
	}

	// Применяем профиль если указан
	if profile != "" {
		if err := config.ApplyProfile(cfg, profile); err != nil {
			return fmt.Errorf("ошибка применения профиля %s: %w", profile, err)
		}
	}

	logger, err = logging.NewEnterpriseLogger(cfg, verbose)
	if err != nil {
		return fmt.Errorf("ошибка инициализации логгера: %w", err)
	}

	if profile != "" {
		logger.Log("INFO", "Применён профиль", "profile", profile)
	}

	return nil
}

func runWipe(cmd *cobra.Command, args []string) error {
	startTime := time.Now()

	if err := setup(); err != nil {
		return err
	}
	defer logger.Close()

	logger.Log("INFO", "Запуск WipeFile Enterprise", "version", Version, "dry_run", dryRun)

	// Число проходов: флаг важнее конфигурации
	effectivePasses := passes
	if effectivePasses == 0 {
		effectivePasses = cfg.Wipe.Passes
	}
	if err := security.ValidatePasses(effectivePasses); err != nil {
		return err
	}

	// Отсекаем защищённые системные пути
	allowed, skipped := security.FilterTargets(cfg, args)
	for _, target := range skipped {
		logger.Log("WARN", "Цель пропущена: защищённый путь", "target", target)
		fmt.Printf("Пропущено (защищённый путь): %s\n", target)
	}
	if len(allowed) == 0 {
		return fmt.Errorf("нет целей для обработки")
	}

	if !force && !dryRun && cfg.Security.RequireConfirmation {
		fmt.Printf("ВНИМАНИЕ: Будет необратимо затёрто %d целей:\n", len(allowed))
		for _, target := range allowed {
			fmt.Printf("  %s\n", target)
		}
		fmt.Print("Продолжить? (y/N): ")
		var response string
		fmt.Scanln(&response)
		if strings.ToLower(response) != "y" {
			logger.Log("INFO", "Операция отменена пользователем")
			return nil
		}
	}

	req := wipe.NewWipeRequest(allowed, effectivePasses, recursive, force)
	req.DryRun = dryRun

	orchestrator := wipe.NewOrchestrator(nil, cfg.Wipe.MaxSpeedMBps, logger)
	sink := progress.NewConsoleSink(os.Stdout)

	outcome := orchestrator.Run(req, sink)
	endTime := time.Now()

	// Вывод результатов: одна строка на объект
	fmt.Println("\nРезультаты затирания:")
	fmt.Println("==================")
	for _, path := range outcome.Deleted {
		fmt.Printf("✓ %s\n", path)
	}
	for _, failure := range outcome.Failed {
		fmt.Printf("✗ %s: %s\n", failure.Path, failure.Reason)
	}

	exitCode := EXIT_SUCCESS
	if !outcome.Succeeded() {
		exitCode = EXIT_ERROR
	}

	if cfg.Reporting.Enabled {
		report := reporting.GenerateReport(req, outcome, Version, startTime, endTime, exitCode)
		if err := reporting.SaveReport(report, cfg); err != nil {
			logger.Log("WARN", "Ошибка сохранения отчёта", "error", err.Error())
		} else {
			logger.Log("INFO", "Отчёт сохранён", "run_id", report.RunID)
		}
	}

	if !outcome.Succeeded() {
		return fmt.Errorf("некоторые операции завершились с ошибкой")
	}

	return nil
}

func runPlan(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer logger.Close()

	orchestrator := wipe.NewOrchestrator(nil, cfg.Wipe.MaxSpeedMBps, logger)
	req := wipe.NewWipeRequest(args, cfg.Wipe.Passes, recursive, force)

	plan, outcome, abortedEarly := orchestrator.BuildPlan(req)

	fmt.Printf("Файлы (%d):\n", len(plan.Files))
	for _, file := range plan.Files {
		fmt.Printf("  %s\n", file)
	}

	fmt.Printf("Директории на удаление (%d, потомки раньше родителей):\n", len(plan.Directories))
	for _, dir := range plan.Directories {
		fmt.Printf("  %s\n", dir)
	}

	if len(outcome.Failed) > 0 {
		fmt.Printf("Отказы планирования (%d):\n", len(outcome.Failed))
		for _, failure := range outcome.Failed {
			fmt.Printf("  ✗ %s: %s\n", failure.Path, failure.Reason)
		}
	}

	if abortedEarly {
		return fmt.Errorf("планирование прервано на первом отказе")
	}
	if !outcome.Succeeded() {
		return fmt.Errorf("план содержит отказы")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(EXIT_ERROR)
	}
	os.Exit(EXIT_SUCCESS)
}
