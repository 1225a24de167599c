package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/xavierca1/wa-gateway/internal/usecase"
)

// Envia uma mensagem de teste pelo gateway rodando localmente.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	number := os.Getenv("TEST_NUMBER")
	if number == "" {
		log.Fatal("❌ TEST_NUMBER deve estar configurado no .env")
	}

	baseURL := os.Getenv("GATEWAY_URL")
	if baseURL == "" {
		baseURL = "http://localhost:3000"
	}

	input := usecase.SendTextInput{
		Number:  number,
		Message: "Mensaje de prueba del gateway",
	}

	fmt.Println("🔄 Enviando mensagem de teste...")
	fmt.Printf("   Número: %s\n", input.Number)
	fmt.Printf("   Gateway: %s\n\n", baseURL)

	body, _ := json.Marshal(input)
	resp, err := http.Post(baseURL+"/send-message", "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("Erro ao chamar o gateway: %v", err)
	}
	defer resp.Body.Close()

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Fatalf("Resposta inválida (HTTP %d): %v", resp.StatusCode, err)
	}

	fmt.Printf("HTTP %d: %v\n", resp.StatusCode, out)
	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
}
