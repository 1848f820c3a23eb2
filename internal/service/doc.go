// Package service implements the application's business operations on top
// of the store interfaces: task lifecycle, list filtering and the derived
// calendar and priority-matrix views, plus natural-language command
// execution.
package service
