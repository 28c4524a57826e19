// Package fetch provides the HTTP collaborator used by the scraper.
//
// Every request goes out with a fixed browser User-Agent (the site rejects
// obvious bot agents) and a fixed timeout. Response bodies are decoded
// according to the declared charset, falling back to UTF-8. Transport and
// status failures are reported as *RequestError so callers can distinguish
// network problems from scrape problems.
package fetch
