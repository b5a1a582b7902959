/*
Package plans turns a YAMAP mountain plan page into a flat text report.

Normalize validates the caller supplied plan URL and strips the printing
suffix. Extractor walks the rendered HTML of the plan page with a fixed set
of selectors and emits the overview, plan data and travel plan sections.
Neither step performs I/O; fetching the rendered page is the job of the
browser package.
*/
package plans
