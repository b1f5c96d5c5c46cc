package main

import "github.com/ouvidoria-digital/esic-backend/cmd"

// @title          e-SIC Backend API
// @version        1.0
// @description    Citizen information request portal: public submission and protocol lookup, plus authenticated admin endpoints for answering requests.
//
// @contact.name   Ouvidoria Digital
//
// @license.name   MIT
//
// @BasePath       /api/v1
//
// @securityDefinitions.apikey AdminToken
// @in   header
// @name Authorization
// @description Bearer token guarding the admin endpoints. Format: "Bearer <token>".
func main() {
	cmd.Execute()
}
