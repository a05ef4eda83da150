package commands

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/ougirez/planstat/internal/domain"
	"github.com/ougirez/planstat/internal/service/statistics"
	"github.com/spf13/cobra"
)

var (
	statsGeoLevel  string
	statsEntityID  string
	statsStartYear int
	statsEndYear   int
	statsChart     bool
)

var statsCmd = &cobra.Command{
	Use:   "stats <indicator-id>",
	Short: "Print the statistics of one indicator as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := openStore(ctx, cfg)
		if err != nil {
			return fmt.Errorf("openStore: %w", err)
		}
		defer st.Close()

		svc := statistics.NewStatisticsService(st, statistics.Options{
			NationalLabel:         cfg.NationalLabel,
			ComparisonParallelism: cfg.ComparisonParallelism,
		})

		level := domain.GeoLevel(statsGeoLevel)
		start, end := optionalYear(statsStartYear), optionalYear(statsEndYear)

		var out interface{}
		if statsChart {
			var ids []string
			if statsEntityID != "" {
				ids = []string{statsEntityID}
			}
			out, err = svc.GetFilteredChartData(ctx, args[0], level, ids, start, end)
		} else {
			out, err = svc.GetFilteredStatistics(ctx, args[0], level, statsEntityID, start, end)
		}
		if err != nil {
			return err
		}

		b, err := sonic.ConfigStd.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return err
	},
}

func optionalYear(y int) *domain.Year {
	if y == 0 {
		return nil
	}
	return &y
}

func init() {
	statsCmd.Flags().StringVar(&statsGeoLevel, "geo-level", string(domain.GeoLevelGlobal), "geographic level (Global, Province, Departement, Commune)")
	statsCmd.Flags().StringVar(&statsEntityID, "geo-entity", "", "geographic entity id")
	statsCmd.Flags().IntVar(&statsStartYear, "start-year", 0, "first year to include")
	statsCmd.Flags().IntVar(&statsEndYear, "end-year", 0, "last year to include")
	statsCmd.Flags().BoolVar(&statsChart, "chart", false, "print chart series instead of statistics")
}
