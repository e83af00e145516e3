package main

import (
	"github.com/rocketsoftware/find-java/bootstrap"
)

//go:generate goversioninfo -o findjava.syso

var (
	productName    = "findjava"
	productTitle   = "Find Java"
	productVersion = "Dummy version number"
)

func main() {
	bootstrap.Run(productName, productTitle, productVersion)
}
