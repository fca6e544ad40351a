// Package scraper fetches Wikipedia pages through the MediaWiki parse API and reads
// medal tables out of the returned HTML.
//
// The medal table is located among all tables of the page by its header row
// ("Gold", "Silver", "Bronze"). Rows are read in displayed order with a small set of
// heuristics for the varying layouts Wikipedia uses: an optional rank column that
// disappears on tied rows, flag icons and footnote markers around the committee
// name, and a trailing totals row. The same locator reads the reference list of
// committee codes used to build the name and flag mapping files.
package scraper
