package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	attrs "github.com/wippyai/hhbc-attrs"
	attrerrors "github.com/wippyai/hhbc-attrs/errors"
)

func main() {
	var (
		ctxName     = flag.String("ctx", "", "Declaration context (class, func, prop, trait_import, alias, parameter, constant)")
		attrMask    = flag.String("attrs", "", "Declaration attribute mask (decimal or 0x hex)")
		typeMask    = flag.String("type-flags", "", "Type constraint flag mask")
		fcallMask   = flag.String("fcall-flags", "", "Call-site flag mask")
		list        = flag.Bool("list", false, "List the flag vocabularies and exit")
		audit       = flag.Bool("audit", false, "Audit the registry and exit")
		verbose     = flag.Bool("v", false, "Verbose logging")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger = l
		defer logger.Sync()
	}

	if *interactive {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if !*list && !*audit && *attrMask == "" && *typeMask == "" && *fcallMask == "" {
		fmt.Fprintln(os.Stderr, "Usage: attrfmt -ctx class -attrs 0x300")
		fmt.Fprintln(os.Stderr, "       attrfmt -type-flags 0x5 | -fcall-flags 0x3")
		fmt.Fprintln(os.Stderr, "       attrfmt -list | -audit")
		fmt.Fprintln(os.Stderr, "       attrfmt -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(logger, *ctxName, *attrMask, *typeMask, *fcallMask, *list, *audit); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *zap.Logger, ctxName, attrMask, typeMask, fcallMask string, list, audit bool) error {
	if audit {
		if err := attrs.Audit(); err != nil {
			return err
		}
		logger.Info("registry audit passed",
			zap.Int("entries", len(attrs.Registry())))
		fmt.Println("registry ok")
		return nil
	}

	if list {
		printRegistry()
		return nil
	}

	if attrMask != "" {
		if ctxName == "" {
			return attrerrors.InvalidInput(attrerrors.PhaseParse, "-attrs requires -ctx")
		}
		ctx, err := attrs.ParseContext(ctxName)
		if err != nil {
			return err
		}
		mask, err := parseMask(attrMask, 32)
		if err != nil {
			return err
		}
		a := attrs.Attr(mask)
		logger.Debug("decoding attribute mask",
			zap.String("context", ctx.String()),
			zap.Uint32("mask", uint32(a)))
		fmt.Println(attrs.String(ctx, a))
		if res := attrs.Residual(ctx, a); res != 0 {
			logger.Warn("mask has bits with no entry under this context",
				zap.String("context", ctx.String()),
				zap.Uint32("residual", uint32(res)))
			fmt.Fprintf(os.Stderr, "warning: residual bits 0x%x not representable under %s\n", uint32(res), ctx)
		}
	}

	if typeMask != "" {
		mask, err := parseMask(typeMask, 16)
		if err != nil {
			return err
		}
		fmt.Println(attrs.TypeFlags(mask).String())
	}

	if fcallMask != "" {
		mask, err := parseMask(fcallMask, 16)
		if err != nil {
			return err
		}
		fmt.Println(attrs.CallFlags(mask).String())
	}

	return nil
}

// parseMask accepts decimal, 0x hex, and 0b binary forms.
func parseMask(s string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, attrerrors.Wrap(attrerrors.PhaseParse, attrerrors.KindInvalidInput, err,
			fmt.Sprintf("parse mask %q", s))
	}
	if bits < 64 && v >= 1<<uint(bits) {
		return 0, attrerrors.Overflow(v, fmt.Sprintf("u%d", bits))
	}
	return v, nil
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	tokenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	bitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))
)

func printRegistry() {
	styled := term.IsTerminal(int(os.Stdout.Fd()))
	render := func(s lipgloss.Style, text string) string {
		if !styled {
			return text
		}
		return s.Render(text)
	}

	fmt.Println(render(headerStyle, "Declaration attributes"))
	for _, e := range attrs.Registry() {
		fmt.Printf("  %-22s %s  %s\n",
			render(tokenStyle, e.Name),
			render(bitStyle, fmt.Sprintf("0x%08x", uint32(e.Bit))),
			e.Contexts)
	}

	fmt.Println()
	fmt.Println(render(headerStyle, "Type constraint flags"))
	for i := 0; i < 16; i++ {
		f := attrs.TypeFlags(1 << i)
		if name := f.String(); name != "" {
			fmt.Printf("  %-22s %s\n",
				render(tokenStyle, name),
				render(bitStyle, fmt.Sprintf("0x%04x", uint16(f))))
		}
	}

	fmt.Println()
	fmt.Println(render(headerStyle, "Call-site flags"))
	for i := 0; i < 16; i++ {
		f := attrs.CallFlags(1 << i)
		if name := f.String(); name != "" {
			fmt.Printf("  %-22s %s\n",
				render(tokenStyle, name),
				render(bitStyle, fmt.Sprintf("0x%04x", uint16(f))))
		}
	}
}
