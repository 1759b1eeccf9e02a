package query

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// SearchColumns are the default columns for free-text order search.
var SearchColumns = []string{"order_number", "customer_name", "customer_email"}

// orderSortColumns whitelists sortable order fields. Anything else silently
// degrades to the default sort, matching the observed behavior of the API.
var orderSortColumns = map[string]string{
	"id":          "id",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"totalAmount": "total_amount",
	"status":      "status",
	"orderNumber": "order_number",
}

// OrderList is the compiled form of an order list request: the filter clauses,
// the sort, and the page, plus an echo of what was actually applied.
type OrderList struct {
	Clauses []Clause
	Sort    Sort
	Page    Page

	// Applied describes the effective filter and is echoed back to the caller.
	Applied map[string]any
}

// ParseOrderList translates the optional list parameters (status, userId,
// amount range, date range, free-text search, sort, pagination) into an
// OrderList. Malformed numeric or date values produce an unconstrained bound
// instead of an error.
func ParseOrderList(values url.Values) OrderList {
	list := OrderList{
		Sort:    parseOrderSort(values.Get("sortBy"), values.Get("sortOrder")),
		Page:    ParsePage(values.Get("page"), values.Get("limit")),
		Applied: make(map[string]any),
	}

	if status := values.Get("status"); status != "" {
		list.Clauses = append(list.Clauses, Equal{Column: "status", Value: status})
		list.Applied["status"] = status
	}

	if raw := values.Get("userId"); raw != "" {
		if userID, err := strconv.ParseInt(raw, 10, 64); err == nil {
			list.Clauses = append(list.Clauses, Equal{Column: "user_id", Value: userID})
			list.Applied["userId"] = userID
		}
	}

	if r, desc, ok := amountRange(values.Get("minAmount"), values.Get("maxAmount")); ok {
		list.Clauses = append(list.Clauses, r)
		list.Applied["totalAmount"] = desc
	}

	if r, desc, ok := dateRange(values.Get("startDate"), values.Get("endDate")); ok {
		list.Clauses = append(list.Clauses, r)
		list.Applied["createdAt"] = desc
	}

	if search := values.Get("search"); search != "" {
		list.Clauses = append(list.Clauses, Match{Columns: SearchColumns, Term: search})
		list.Applied["search"] = search
	}

	return list
}

func amountRange(minRaw, maxRaw string) (Range, map[string]any, bool) {
	r := Range{Column: "total_amount"}
	desc := make(map[string]any)
	if v, err := strconv.ParseFloat(minRaw, 64); minRaw != "" && err == nil {
		r.Min = v
		desc["min"] = v
	}
	if v, err := strconv.ParseFloat(maxRaw, 64); maxRaw != "" && err == nil {
		r.Max = v
		desc["max"] = v
	}
	return r, desc, r.Min != nil || r.Max != nil
}

func dateRange(startRaw, endRaw string) (Range, map[string]any, bool) {
	r := Range{Column: "created_at"}
	desc := make(map[string]any)
	if t, ok := parseDate(startRaw); ok {
		r.Min = t
		desc["start"] = t
	}
	if t, ok := parseDate(endRaw); ok {
		r.Max = t
		desc["end"] = t
	}
	return r, desc, r.Min != nil || r.Max != nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDate(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	// An unparseable date leaves that side of the range unconstrained.
	return time.Time{}, false
}

// searchFieldColumns maps caller-facing search field names to columns.
var searchFieldColumns = map[string]string{
	"orderNumber":        "order_number",
	"customerInfo.name":  "customer_name",
	"customerInfo.email": "customer_email",
	"status":             "status",
}

// ParseSearchFields resolves a comma-separated field list to the matching
// columns, dropping anything outside the whitelist. An empty or fully
// unrecognized list falls back to the default search columns.
func ParseSearchFields(fields string) []string {
	var columns []string
	seen := make(map[string]bool)
	for _, field := range strings.Split(fields, ",") {
		col, ok := searchFieldColumns[strings.TrimSpace(field)]
		if !ok || seen[col] {
			continue
		}
		seen[col] = true
		columns = append(columns, col)
	}
	if len(columns) == 0 {
		return SearchColumns
	}
	return columns
}

func parseOrderSort(sortBy, sortOrder string) Sort {
	column, ok := orderSortColumns[sortBy]
	if !ok {
		column = "created_at"
	}
	if sortOrder == "" {
		sortOrder = "desc"
	}
	return Sort{Column: column, Desc: sortOrder == "desc"}
}
