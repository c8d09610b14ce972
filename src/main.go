package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"BikeshareExplorer/src/config"
	"BikeshareExplorer/src/console"
	"BikeshareExplorer/src/datasource/file"
	"BikeshareExplorer/src/processor"
	"BikeshareExplorer/src/storage"

	"github.com/go-gota/gota/dataframe"
	"github.com/spf13/cobra"
)

const restartQuestion = "\nWould you like to restart? Enter yes or no.\n"

// options 命令行参数
type options struct {
	configDir  string
	configFile string
	city       string
	month      string
	day        string
	raw        bool
}

// app 一次运行所需的全部组件
type app struct {
	cfg    *config.Config
	vocab  config.Vocabulary
	logger *storage.Logger
	loader *file.Loader
	render *console.Renderer
	pager  *console.Pager
	out    io.Writer
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	opts := options{}
	cmd := &cobra.Command{
		Use:   "bikeshare",
		Short: "Explore US bikeshare trip data",
		Long: `Interactively explore bikeshare trip data for a configured city.
With --city the report runs once for the given month and day and exits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)

	f := cmd.Flags()
	f.StringVar(&opts.configDir, "config-dir", "./config", "directory containing the config file")
	f.StringVar(&opts.configFile, "config", "config.json", "config file name")
	f.StringVarP(&opts.city, "city", "c", "", "city to report on (skips the prompts)")
	f.StringVarP(&opts.month, "month", "m", config.All, "month name or \"all\"")
	f.StringVarP(&opts.day, "day", "d", config.All, "day of week or \"all\"")
	f.BoolVar(&opts.raw, "raw", false, "with --city, also print the first page of raw rows")
	return cmd
}

func run(opts options, in io.Reader, out io.Writer) error {
	cfg, err := config.LoadConfig(opts.configDir, opts.configFile)
	if err != nil {
		return err
	}

	// 初始化日志系统
	logger, err := storage.NewLogger(cfg.LogName)
	if err != nil {
		return err
	}
	defer logger.Close()
	go waitForShutdown(logger)

	a := &app{
		cfg:    cfg,
		vocab:  config.DefaultVocabulary(),
		logger: logger,
		loader: file.NewLoader(cfg, logger),
		render: console.NewRenderer(out),
		pager:  console.NewPager(out, cfg.PageSize),
		out:    out,
	}

	if opts.city != "" {
		return a.once(console.Selection{City: opts.city, Month: opts.month, Day: opts.day}, opts.raw)
	}
	return a.interactive(console.NewPrompter(in, out, cfg, a.vocab))
}

// session 加载 -> 时间拆分 -> 过滤 -> 统计
func (a *app) session(sel console.Selection) (dataframe.DataFrame, processor.Summary, error) {
	a.logger.Infof("会话选择: city=%s month=%s day=%s", sel.City, sel.Month, sel.Day)

	df, err := a.loader.Load(sel.City)
	if err != nil {
		return dataframe.DataFrame{}, processor.Summary{}, err
	}
	df, err = processor.Decompose(df, a.cfg.TimeLayouts)
	if err != nil {
		return dataframe.DataFrame{}, processor.Summary{}, fmt.Errorf("%s: %w", sel.City, err)
	}
	df, err = processor.Filter(df, sel.Month, sel.Day, a.vocab)
	if err != nil {
		return dataframe.DataFrame{}, processor.Summary{}, err
	}
	a.logger.Infof("过滤后剩余 %d 行", df.Nrow())

	return df, processor.Summarize(df, a.vocab), nil
}

// once 非交互模式，只运行一次
func (a *app) once(sel console.Selection, raw bool) error {
	sel, err := console.ValidateSelection(sel, a.cfg, a.vocab)
	if err != nil {
		return err
	}

	df, summary, err := a.session(sel)
	if err != nil {
		a.logger.Error(err.Error())
		return err
	}
	a.render.Summary(sel, summary)

	if raw {
		rows := console.Raw(df)
		if rows.Nrow() == 0 {
			fmt.Fprintln(a.out, console.NoticeStyle.Render("No raw data to display."))
			return nil
		}
		a.pager.Page(rows, 0)
	}
	return nil
}

// interactive 循环直到用户不再重新开始或输入结束
func (a *app) interactive(p *console.Prompter) error {
	for {
		sel, err := p.Selection()
		if err != nil {
			return ignoreEOF(err)
		}

		df, summary, err := a.session(sel)
		switch {
		case errors.Is(err, file.ErrDataUnavailable), errors.Is(err, processor.ErrMalformedTimestamp):
			a.logger.Error(err.Error())
			a.render.Error(err)
		case err != nil:
			return err
		default:
			a.render.Summary(sel, summary)
			if err := a.pager.Run(df, p.Confirm); err != nil {
				return ignoreEOF(err)
			}
		}

		again, err := p.Confirm(restartQuestion)
		if err != nil {
			return ignoreEOF(err)
		}
		if !again {
			a.logger.Info("用户退出")
			return nil
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func waitForShutdown(logger *storage.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	logger.Info("Received signal: " + sig.String() + ", shutting down...")
	logger.Close()
	os.Exit(0)
}
