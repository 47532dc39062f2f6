package main

import vaulty "github.com/vaulty/vaulty/cmd/vaulty"

func main() {
	vaulty.Execute()
}
