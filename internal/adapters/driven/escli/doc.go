// Package escli implements the CLI transport: it runs Everything's es.exe
// command-line client per query and decodes its CSV output.
//
// The process is spawned with an argument array. The only shell use is the
// optional cmd.exe wrapper that switches the console code page to UTF-8
// before es.exe runs.
//
// When es.exe cannot be found and no explicit path was configured, the
// transport offers to install it once per process and retries the query
// with the installed binary.
package escli
