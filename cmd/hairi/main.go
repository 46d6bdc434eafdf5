package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/kevin-chtw/tw_riichi/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/protobuf/types/known/structpb"
)

type options struct {
	config  string
	visible string
	json    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "hairi <hand>",
		Short: "Shanten, waits and decompositions of a riichi hand",
		Example: "  hairi 123m456p789s1122z\n" +
			"  hairi --visible 5m5m 3468m234p55s234z",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts, args[0])
		},
	}
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "yaml config with rule and log sections")
	cmd.Flags().StringVar(&opts.visible, "visible", "", "tiles already visible on the table, for ukeire")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print the report as protobuf JSON")
	return cmd
}

func setup(opts *options) (*mahjong.Analyzer, error) {
	rule := mahjong.DefaultRule()
	v := viper.New()
	if opts.config != "" {
		var err error
		if rule, v, err = mahjong.LoadRuleFile(opts.config); err != nil {
			return nil, err
		}
	}
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", utils.DefaultLogDir)

	level, err := utils.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return nil, err
	}
	if err := utils.InitLogger(level, v.GetString("log.dir")); err != nil {
		return nil, err
	}
	return mahjong.NewAnalyzer(rule), nil
}

func run(w io.Writer, opts *options, hand string) error {
	h, err := mahjong.ParseHand(hand)
	if err != nil {
		return err
	}
	if n := h.Count(); n > mahjong.TileCountWinner {
		return fmt.Errorf("hand holds %d tiles, more than %d", n, mahjong.TileCountWinner)
	}
	var visible *mahjong.Hand34
	if opts.visible != "" {
		v, err := mahjong.ParseHand(opts.visible)
		if err != nil {
			return fmt.Errorf("visible tiles: %w", err)
		}
		visible = &v
	}

	a, err := setup(opts)
	if err != nil {
		return err
	}

	detail := a.ShantenDetail(h)
	report := a.Hairi(h)
	decompositions := a.FindAllDecompositions(h)

	if opts.json {
		return printJSON(w, detail, report, decompositions)
	}
	printText(w, h, visible, detail, report, decompositions)
	return nil
}

func printJSON(w io.Writer, detail mahjong.ShantenResult, report *mahjong.HairiResult, ds []mahjong.Decomposition) error {
	shanten, err := detail.ToStruct()
	if err != nil {
		return err
	}
	hairi, err := report.ToStruct()
	if err != nil {
		return err
	}
	list, err := mahjong.DecompositionsToList(ds)
	if err != nil {
		return err
	}
	out := &structpb.Struct{Fields: map[string]*structpb.Value{
		"shanten":        structpb.NewStructValue(shanten),
		"hairi":          structpb.NewStructValue(hairi),
		"decompositions": structpb.NewListValue(list),
	}}
	data, err := utils.ToJSON(out)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printText(w io.Writer, h mahjong.Hand34, visible *mahjong.Hand34, detail mahjong.ShantenResult, report *mahjong.HairiResult, ds []mahjong.Decomposition) {
	fmt.Fprintf(w, "%s (%d tiles)\n", h, h.Count())
	fmt.Fprintf(w, "shanten: standard %s, seven pairs %s, thirteen orphans %s\n",
		shantenText(detail.Standard), shantenText(detail.SevenPairs), shantenText(detail.ThirteenOrphans))

	if report == nil {
		fmt.Fprintln(w, color.HiRedString("complete hand (%s)", detail.Shape()))
		for _, d := range ds {
			fmt.Fprintln(w, "  "+decompositionText(d))
		}
		return
	}

	if detail.Min == 0 {
		fmt.Fprintln(w, color.HiGreenString("tenpai"))
	} else {
		fmt.Fprintf(w, "%d shanten\n", detail.Min)
	}

	if report.Wait != nil {
		fmt.Fprintf(w, "wait %d: %s\n", mahjong.Ukeire(h, report.Wait, visible), mahjong.KindsName(report.Wait))
		return
	}
	for _, dw := range report.WaitsAfterDiscard {
		after := h
		after[dw.Discard]--
		n := mahjong.Ukeire(after, dw.Wait, visible)
		line := fmt.Sprintf("discard %s, wait %d: %s", dw.Discard, n, mahjong.KindsName(dw.Wait))
		fmt.Fprintln(w, color.HiYellowString("%s", line))
	}
}

func shantenText(n int) string {
	switch {
	case n == mahjong.Agari:
		return color.HiRedString("complete")
	case n > 13:
		return "off"
	}
	return fmt.Sprint(n)
}

func decompositionText(d mahjong.Decomposition) string {
	parts := make([]string, len(d))
	for i, b := range d {
		parts[i] = "[" + mahjong.KindsName(b) + "]"
	}
	return strings.Join(parts, " ")
}
