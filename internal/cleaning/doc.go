// Package cleaning repairs the individual workbook tables: it removes
// duplicate records, coerces numeric and date text into typed values,
// canonicalizes sales channels and derives reporting columns such as
// gross_profit and order_month. Each table has its own cleaner and each
// cleaner returns a cleaned copy plus counters describing what changed;
// inputs are never mutated.
package cleaning
