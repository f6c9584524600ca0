package bot

import (
	"fmt"
	"strings"

	"github.com/lfmorais/nara/backend/internal/model/bot"
)

// Every user-facing text the assistant sends. Kept together so the
// condo administration can review the whole script in one place.
const (
	msgGreeting = "*🏢 Olá, bem-vindo(a)! ✨*\nEu sou a NARA, sua Assistente Residencial Virtual!\nEstou aqui para facilitar a sua vida no condomínio e ajudar no que precisar. 😊"

	msgInstructions = "Olha, aqui é muito fácil, basta responder com o número da opção desejada, eu vou cuidar do resto.\nSe desejar encerrar essa conversa, basta digitar a palavra FIM a qualquer momento."

	msgMenu = "*Vamos começar? Escolha uma das opções abaixo:*\n\n*[ 1 ]* - Ativar TAG veicular\n*[ 2 ]* - Outras dúvidas"

	msgMenuHint = "Digite apenas o número da opção desejada. Vou cuidar do resto!"

	msgInvalidOption = "Ops! Essa opção não existe. Tente novamente digitando o número correto. 😉"

	msgWelcomeBack = "Olá novamente! Fico feliz por voltar a conversar com você.\n Lembre-se é só responder com o número da opção desejada, eu vou cuidar do resto.\nSe desejar encerrar essa conversa, basta digitar a palavra FIM a qualquer momento."

	msgContactInfo = "No momento, ainda estou sendo treinada para responder a novas dúvidas 🙈. Mas fique tranquilo! Você pode entrar em contato diretamente com:\n\n👷‍♂️ *Zelador*: 17991177496\n👩‍💼 *Síndicas*: 17992538226\n\nEles vão te ajudar com o que precisar! 😊"

	msgFarewell = "Foi um prazer ajudar! 😊 Se precisar novamente, estou sempre aqui. Até logo! 👋"

	msgAskCPF = "Vamos nessa! Primeiro, me diga o CPF que será vinculado à TAG."

	msgCPFInvalid = "Parece que o CPF está incorreto. Por favor, me envie os 11 dígitos sem pontos ou traços."

	msgCPFNotFound = "Hmm...não achei o CPF. Vamos tentar de novo?"

	msgCPFRetry = "Entendido! Por favor, vamos tentar com o CPF novamente."

	msgAskTagNumber = "Perfeito! Agora me passe o número da TAG (precisa ter 10 dígitos)."

	msgTagNumberInvalid = "Ops! O número da TAG precisa ter exatamente 10 dígitos. Tente novamente."

	msgAskPlate = "Agora informe a placa do veículo (ex: XXX1234 ou XXX1X23)."

	msgPlateInvalid = "Formato de placa inválido. Por favor, informe novamente (ex: ABC1234 ou ABC1D23)."

	msgBrandInvalid = "Não encontrei essa opção. Vamos tentar de novo?"

	msgModelInvalid = "Não consegui identificar o modelo. Vamos tentar novamente?"

	msgColorInvalid = "Hum, não entendi essa cor. Vamos tentar de novo? Escolha uma cor da lista!"

	msgDuplicate = "Ops! Parece que o número da TAG ou a placa informada já estão cadastrados. Se você tiver certeza dos dados, por favor, entre em contato com a administração para verificar. Caso contrário, você pode corrigir e recomeçar o processo."

	msgStartOver = "Certo, vamos apagar tudo e começar novamente, com calma dessa vez. 😊"

	msgAskTagPhoto = "Perfeito! Agora, vou precisar que tire uma foto da TAG já instalada no carro para eu registrar."

	msgTagPhotoFailed = "Não consegui baixar a imagem. Por favor, envie novamente uma foto da TAG instalada no carro."

	msgTagPhotoMissing = "Parece que não recebi uma foto. Por favor, envie uma imagem da TAG instalada no carro."

	msgAskVehiclePhoto = "Quase lá! Agora, eu preciso de uma foto do carro de frente, com a placa bem visível. Assim conseguimos validar tudo direitinho!"

	msgVehiclePhotoFailed = "Não consegui baixar a imagem. Por favor, envie uma foto do carro de frente com a placa visível."

	msgVehiclePhotoMissing = "Não recebi uma imagem. Envie uma foto do carro de frente com a placa visível."

	msgSuccess = "Prontinho! 🥳 O processo foi concluído com sucesso e a sua TAG será ativada em até 24 horas. Obrigado por sua paciência!"

	msgFailure = "Ocorreu um erro ao tentar concluir o processo. Por favor, entre em contato com o suporte."

	msgRecoverApology = "Parece que houve um probleminha. Vamos recomeçar do início, tudo bem?"

	msgRecoverAskCPF = "Para isso, por favor, informe novamente o CPF que será vinculado à TAG."
)

// formatOptions renders a numbered pick list in the assistant's style.
func formatOptions(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("*[ %d ]* - %s", i+1, item)
	}
	return strings.Join(lines, "\n")
}

func msgConfirmPerson(name string) string {
	return fmt.Sprintf("Ótimo, parece que encontrei o CPF!\nO registro é de:\n*%s*\nEssa informação esta correta ?\n\n*[ 1 ]* - Sim\n*[ 2 ]* - Não", name)
}

func msgBrandList(brands []string) string {
	return fmt.Sprintf("Escolha a marca do carro na lista:\n%s", formatOptions(brands))
}

func msgModelList(models []string) string {
	return fmt.Sprintf("Qual é o modelo do seu carro?\n%s", formatOptions(models))
}

func msgColorList(colors []string) string {
	return fmt.Sprintf("E agora, qual é a cor do carro?\n%s", formatOptions(colors))
}

func msgSummary(draft bot.TagDraft) string {
	return fmt.Sprintf(
		"Tudo certo! Vamos conferir os dados antes de finalizar:\n\n🚗 CPF: %s\n🏷 TAG: %s\n🔖 Placa: %s\n🚘 Marca: %s\n📌 Modelo: %s\n🎨 Cor: %s\n\nEstá tudo correto? Digite *SIM* para confirmar ou corrija qualquer informação antes de prosseguir.",
		draft.CPF, draft.TagNumber, draft.Vehicle.Plate, draft.Vehicle.Brand, draft.Vehicle.Model, draft.Vehicle.Color,
	)
}
