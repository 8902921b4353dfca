// Command discdb looks up disc backups in TheDiscDB catalog.
package main

func main() {
	Execute()
}
