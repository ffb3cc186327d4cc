// Package paging models the continuous page coordinate of a multi-day view.
//
// A page is one civil day. The integer part of a page indexes a day relative
// to 1970-01-01, the fractional part is the scroll progress toward the next
// day. Pixel offsets are measured from MinPage, so offset zero is the first
// representable day.
package paging
