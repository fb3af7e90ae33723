package main

// @title           Whop Relay API
// @version         1.0
// @description     Relay entre o front-end e a API de mensagens do Whop

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Token de sessão do relay usando o esquema Bearer. Exemplo: "Bearer {token}"
