// Package pipeline wires the processing stages into the single-pass batch
// run: normalize, categorize, cluster, filter, aggregate.
package pipeline

import (
	"awiese/finance-master/internal/aggregate"
	"awiese/finance-master/internal/categorize"
	"awiese/finance-master/internal/cluster"
	"awiese/finance-master/internal/config"
	"awiese/finance-master/internal/csvio"
	"awiese/finance-master/internal/filter"
	"awiese/finance-master/internal/logging"
	"awiese/finance-master/internal/models"
	"awiese/finance-master/internal/normalize"
)

// Pipeline runs the classification-and-aggregation engine over raw tables.
// Each stage consumes and returns a full transaction set; no stage mutates
// its input.
type Pipeline struct {
	normalizer  *normalize.Normalizer
	categorizer *categorize.Categorizer
	clusterer   *cluster.Clusterer
	filter      *filter.Filter
	aggregator  *aggregate.Aggregator
	logger      logging.Logger
}

// New builds a Pipeline from configuration.
func New(cfg *config.Config, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.GetLogger()
	}

	columns := normalize.Columns{
		Date:        cfg.Columns.Date,
		ValueDate:   cfg.Columns.ValueDate,
		Description: cfg.Columns.Description,
		Outflow:     cfg.Columns.Outflow,
		Inflow:      cfg.Columns.Inflow,
	}

	return &Pipeline{
		normalizer:  normalize.New(columns, logger),
		categorizer: categorize.New(logger),
		clusterer:   cluster.New(cfg.Clustering.Threshold, logger),
		filter:      filter.New(cfg.Filter.ExcludedCategories, logger),
		aggregator:  aggregate.New(logger),
		logger:      logger,
	}
}

// ProcessTable runs one raw table through normalize, categorize, cluster and
// filter, returning the cleaned transaction set for that table.
func (p *Pipeline) ProcessTable(table csvio.RawTable, ruleSet []models.CategoryRule) ([]models.Transaction, error) {
	transactions, err := p.normalizer.Normalize(table)
	if err != nil {
		return nil, err
	}

	transactions = p.categorizer.Apply(transactions, ruleSet)
	transactions = p.clusterer.Canonicalize(transactions)
	transactions = p.filter.Apply(transactions)

	p.logger.Info("Processed table",
		logging.Field{Key: logging.FieldFile, Value: table.Source},
		logging.Field{Key: logging.FieldCount, Value: len(transactions)})

	return transactions, nil
}

// Run processes every table, concatenates the results into the combined
// transaction set and aggregates the totals view. Any normalization or
// aggregation failure aborts the whole run; there is no partial output.
func (p *Pipeline) Run(tables []csvio.RawTable, ruleSet []models.CategoryRule) ([]models.Transaction, []models.TotalsRow, error) {
	combined := []models.Transaction{}
	for _, table := range tables {
		transactions, err := p.ProcessTable(table, ruleSet)
		if err != nil {
			return nil, nil, err
		}
		combined = append(combined, transactions...)
	}

	totals, err := p.aggregator.Totals(combined)
	if err != nil {
		return nil, nil, err
	}

	return combined, totals, nil
}

// Totals re-aggregates an existing combined transaction set, e.g. after a
// batch of manual reclassifications.
func (p *Pipeline) Totals(transactions []models.Transaction) ([]models.TotalsRow, error) {
	return p.aggregator.Totals(transactions)
}
