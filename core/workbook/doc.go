// Package workbook reads Excel onboarding workbooks into rows of named
// fields.
//
// It wraps excelize behind a small Source/Sheet API: a Source is an open
// workbook, a Sheet is one named sheet read in full. The first row of a sheet
// is treated as the header and every data row is exposed as a Row mapping
// column name to cell value.
//
// # Null Normalization
//
// Spreadsheets routinely have short rows and blank cells. Rows() fills every
// header column, mapping blank or missing cells to nil, so downstream code
// needs null checks only.
//
// # Typed Accessors
//
// Row carries accessors (String, Int, Decimal, Date, Bool) that parse cell
// text into the types the loader stores: shopspring decimals for monetary
// columns, date-only times for date columns (including Excel serials).
package workbook
