package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ByLCY/cvpress/fonts"
	"github.com/ByLCY/cvpress/layout"
	"github.com/ByLCY/cvpress/renderer"
	canvasrenderer "github.com/ByLCY/cvpress/renderer/canvas"
	fpdfrenderer "github.com/ByLCY/cvpress/renderer/fpdf"
	"github.com/ByLCY/cvpress/resume"
)

// 渲染后端名称。
const (
	rendererCanvas = "canvas"
	rendererFpdf   = "fpdf"
)

type generateOptions struct {
	layout        string
	profile       string
	renderer      string
	fontBody      string
	lineHeight    string
	educationSize string
	debug         string
	verbose       bool
}

func newGenerateCmd() *cobra.Command {
	opts := generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate <input_file> <output_file>",
		Short: "从 JSON 简历生成 PDF",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("%w: 需要 <input_file> <output_file> 两个参数，实际 %d 个", ErrUsage, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			if err := run(args[0], args[1], opts, logger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Resume saved as %s\n", args[1])
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.layout, "layout", envOr("CVPRESS_LAYOUT", layout.SingleColumnName), "排版模板："+strings.Join(layout.TemplateNames(), " 或 "))
	flags.StringVar(&opts.profile, "profile", os.Getenv("CVPRESS_PROFILE"), "profile 文件路径")
	flags.StringVar(&opts.renderer, "renderer", envOr("CVPRESS_RENDERER", rendererCanvas), "渲染后端：canvas 或 fpdf")
	flags.StringVar(&opts.fontBody, "font-body", "", "正文字号，例如 10 或 10pt")
	flags.StringVar(&opts.lineHeight, "line-height", "", "行高，例如 12pt 或 1.2x")
	flags.StringVar(&opts.educationSize, "education-size", "", "教育经历字号")
	flags.StringVar(&opts.debug, "debug", "", "布局调试 JSON 输出路径")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "输出排版过程日志")
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		w = io.Discard
	}
	return log.New(w, "cvpress: ", 0)
}

// run 串联解析、布局与渲染，成功时输出文件只写入一次。
func run(inputPath, outputPath string, opts generateOptions, logger *log.Logger) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrInputRead, inputPath, err)
	}
	res, err := resume.Parse(data)
	if err != nil {
		return err
	}

	tmpl, err := layout.TemplateFor(opts.layout)
	if err != nil {
		return err
	}

	var profile *layout.Profile
	if opts.profile != "" {
		if profile, err = layout.ReadProfile(opts.profile); err != nil {
			return err
		}
		logger.Printf("profile %s %s", profile.Name, profile.Version)
	}

	overrides, err := opts.overrides()
	if err != nil {
		return err
	}
	cfg := layout.Preset(tmpl.Name()).Merge(profile.ConfigFor(tmpl.Name())).Merge(overrides)

	geometry := layout.Letter()
	if profile != nil && profile.Geometry != nil {
		geometry = *profile.Geometry
	}

	r, err := newRenderer(opts.renderer, profile)
	if err != nil {
		return err
	}
	ts, ok := r.(layout.Typesetter)
	if !ok {
		return fmt.Errorf("renderer 未实现排版接口")
	}

	result, err := layout.Build(res, tmpl, layout.BuildOptions{
		Typesetter: ts,
		Geometry:   geometry,
		Config:     cfg,
		Meta:       profile.ApplyMeta(layout.DefaultMeta()),
		Bindings:   res.Bindings(),
	})
	if err != nil {
		return fmt.Errorf("布局计算失败: %w", err)
	}
	logger.Printf("layout=%s pages=%d renderer=%s body=%gpt leading=%gpt",
		result.Template, len(result.Pages), opts.renderer, cfg.BodySize(), cfg.Leading())

	if opts.debug != "" {
		if err := writeDebug(result, opts.debug); err != nil {
			return err
		}
		logger.Printf("debug layout written to %s", opts.debug)
	}

	pdfBytes, err := r.Render(result)
	if err != nil {
		return fmt.Errorf("渲染 PDF 失败: %w", err)
	}
	if err := writeFileAtomic(outputPath, pdfBytes); err != nil {
		return err
	}
	logger.Printf("wrote %d bytes", len(pdfBytes))
	return nil
}

// overrides 将命令行上的字号与行高转换为 Config。
func (o generateOptions) overrides() (layout.Config, error) {
	var cfg layout.Config
	if o.fontBody != "" {
		l, err := layout.ParseLength(o.fontBody)
		if err != nil {
			return cfg, fmt.Errorf("%w: --font-body: %v", ErrUsage, err)
		}
		cfg.FontBody = l.ToPT()
	}
	if o.educationSize != "" {
		l, err := layout.ParseLength(o.educationSize)
		if err != nil {
			return cfg, fmt.Errorf("%w: --education-size: %v", ErrUsage, err)
		}
		cfg.EducationSize = l.ToPT()
	}
	if o.lineHeight != "" {
		spec, err := layout.ParseLineHeight(o.lineHeight)
		if err != nil {
			return cfg, fmt.Errorf("%w: --line-height: %v", ErrUsage, err)
		}
		spec.ApplyTo(&cfg)
	}
	return cfg, nil
}

func newRenderer(name string, profile *layout.Profile) (renderer.Renderer, error) {
	switch name {
	case rendererCanvas:
		opts := canvasrenderer.Options{Fonts: map[layout.FontStyle]canvasrenderer.Resource{}}
		for _, style := range []layout.FontStyle{layout.FontRegular, layout.FontBold, layout.FontItalic} {
			if src := profile.FontPath(style); src != "" {
				opts.Fonts[style] = canvasrenderer.Resource{Path: src}
			}
		}
		return canvasrenderer.NewRendererWithOptions(opts), nil
	case rendererFpdf:
		created, err := creationDate()
		if err != nil {
			return nil, err
		}
		opts := fpdfrenderer.Options{CreationDate: created, Fonts: map[layout.FontStyle][]byte{}}
		for _, style := range []layout.FontStyle{layout.FontRegular, layout.FontBold, layout.FontItalic} {
			src := profile.FontPath(style)
			if src == "" {
				continue
			}
			data, err := loadFont(src)
			if err != nil {
				return nil, fmt.Errorf("%w: 字体 %s: %w", layout.ErrRenderBackend, src, err)
			}
			opts.Fonts[style] = data
		}
		return fpdfrenderer.NewRenderer(opts), nil
	default:
		return nil, fmt.Errorf("%w: 未知的渲染后端 %q（可选：%s, %s）", ErrUsage, name, rendererCanvas, rendererFpdf)
	}
}

func loadFont(src string) ([]byte, error) {
	if fonts.IsEmbedded(src) {
		return fonts.Load(src)
	}
	return os.ReadFile(src)
}

// creationDate 读取 SOURCE_DATE_EPOCH，未设置时返回零值。
func creationDate() (time.Time, error) {
	raw := os.Getenv("SOURCE_DATE_EPOCH")
	if raw == "" {
		return time.Time{}, nil
	}
	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: SOURCE_DATE_EPOCH 无效: %q", ErrUsage, raw)
	}
	return time.Unix(sec, 0).UTC(), nil
}

func writeDebug(result *layout.Result, debugPath string) error {
	if err := layout.WriteDebugJSON(result, debugPath); err != nil {
		return fmt.Errorf("%w: 输出调试 JSON 失败: %w", ErrWriteOutput, err)
	}
	return nil
}

// writeFileAtomic 先写入同目录的临时文件再重命名，失败时不留下输出文件。
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: 创建输出目录失败: %w", ErrWriteOutput, err)
	}
	tmp, err := os.CreateTemp(dir, ".cvpress-*.pdf")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: 写入 PDF 文件失败: %w", ErrWriteOutput, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
