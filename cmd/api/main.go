// @title        BookCollection API
// @version      1.0
// @description  图书集合CRUD服务
// @host         localhost:8080
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcollection/internal/domain/book"
	"github.com/xiebiao/bookcollection/internal/infrastructure/config"
	"github.com/xiebiao/bookcollection/internal/infrastructure/events"
	"github.com/xiebiao/bookcollection/pkg/logger"
	"github.com/xiebiao/bookcollection/pkg/tracing"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd 根命令，不带子命令时等同于serve
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "bookcollection",
		Short:         "图书集合CRUD服务",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "配置文件路径（默认查找 ./config/config.yaml、./config.yaml）")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "启动HTTP服务",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runServe(cmd.Context(), configPath)
			},
		},
		&cobra.Command{
			Use:   "events",
			Short: "订阅并打印图书变更事件（RabbitMQ）",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runEvents(cmd.Context(), configPath)
			},
		},
	)
	return root
}

// bootstrap 加载配置并创建日志
func bootstrap(configPath string) (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(cfg.Log.Options())
	if err != nil {
		return nil, nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	return cfg, log, nil
}

// runServe 启动HTTP服务，收到SIGINT/SIGTERM后优雅退出
func runServe(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, log, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	defer log.Sync()

	log.Info("配置加载成功",
		zap.String("file", cfg.File()),
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("storage", cfg.Storage.Driver),
	)

	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Warn("关闭Tracer失败", zap.Error(err))
			}
		}()
		log.Info("链路追踪已启用", zap.String("endpoint", cfg.Tracing.Endpoint))
	}

	app, cleanup, err := InitializeApp(cfg, log)
	if err != nil {
		return fmt.Errorf("初始化应用失败: %w", err)
	}
	defer cleanup()

	// 配置热重载：目前只有日志级别在运行时生效，其余配置需要重启
	cfg.Watch(func(next *config.Config) {
		if err := log.SetLevel(next.Log.Level); err != nil {
			log.Warn("更新日志级别失败", zap.Error(err))
			return
		}
		log.Info("配置已重新加载", zap.String("log_level", next.Log.Level))
	}, func(err error) {
		log.Warn("配置变更无效，继续使用旧配置", zap.Error(err))
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      app.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("服务启动成功", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return fmt.Errorf("启动服务失败: %w", err)
	case <-ctx.Done():
	}

	log.Info("正在关闭服务...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("关闭服务失败: %w", err)
	}
	log.Info("服务已退出")
	return nil
}

// runEvents 持续消费图书事件并写日志，直到收到退出信号
func runEvents(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, log, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	defer log.Sync()

	if !cfg.Events.Enabled {
		log.Warn("events.enabled为false，服务不会发布事件")
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return events.Tail(ctx, cfg.Events, log.Logger, func(e book.Event) {
		log.Info("图书事件",
			zap.String("id", e.ID),
			zap.String("type", string(e.Type)),
			zap.Int("book_id", e.BookID),
			zap.String("title", e.Title),
			zap.String("author", e.Author),
			zap.Int("year", e.Year),
			zap.Time("occurred_at", e.OccurredAt),
		)
	})
}
