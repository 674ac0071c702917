// Package postman dispatches requests carried as pack elements to
// registered resource handlers and writes a response back into the same
// buffer, in place.
//
// A request is two elements: an integer method token (the method code in
// its high byte, a correlation id in its low 24 bits) followed by a list
// whose first element is the path and whose remaining elements are the
// arguments. An empty list addresses the resource collection itself; GET
// against it lists every registered path, anything else is rejected with
// 4.05. A string path is matched against each registered resource in
// registration order; the first match's handler receives the reader
// positioned just past the path and a writer positioned inside the opened
// response list. An integer path always yields 4.04.
//
// The response mirrors the request: a status token (the status code in
// its high byte, the request's correlation id echoed in its low 24 bits)
// followed by a list holding the handler's output or the path listing, or
// by nothing if dispatch failed before reaching a handler.
package postman
