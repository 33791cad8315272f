// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

type sampleEntry struct {
	name     string
	price    float64
	quantity int
	category Category
}

var sampleEntries = []sampleEntry{
	{"Notebook Dell Inspiron", 3499.90, 15, Eletronicos},
	{"Mouse Logitech MX Master", 349.90, 45, Eletronicos},
	{"Teclado Mecânico Redragon", 289.90, 30, Eletronicos},
	{"Monitor LG 27 polegadas", 1299.90, 12, Eletronicos},
	{"Webcam Logitech C920", 449.90, 25, Eletronicos},
	{"Fone de Ouvido Sony WH-1000XM4", 1599.90, 18, Eletronicos},
	{"SSD Samsung 1TB", 499.90, 50, Eletronicos},
	{"Pendrive 64GB Kingston", 39.90, 100, Eletronicos},

	{"Camiseta Básica Preta", 49.90, 80, Roupas},
	{"Calça Jeans Masculina", 129.90, 45, Roupas},
	{"Tênis Nike Air Max", 599.90, 30, Roupas},
	{"Jaqueta de Couro", 399.90, 20, Roupas},
	{"Vestido Floral Feminino", 159.90, 35, Roupas},
	{"Moletom com Capuz", 119.90, 55, Roupas},

	{"Café Especial 250g", 24.90, 120, Alimentos},
	{"Chocolate Lindt 100g", 18.90, 150, Alimentos},
	{"Azeite Extra Virgem 500ml", 34.90, 80, Alimentos},
	{"Mel Orgânico 300g", 29.90, 60, Alimentos},
	{"Biscoito Integral", 12.90, 200, Alimentos},

	{"Cadeira Gamer DXRacer", 1499.90, 10, Moveis},
	{"Mesa de Escritório", 899.90, 15, Moveis},
	{"Estante para Livros", 349.90, 12, Moveis},
	{"Poltrona Reclinável", 799.90, 8, Moveis},

	{"Algoritmos - Cormen", 189.90, 25, Livros},
	{"Clean Code - Robert Martin", 79.90, 40, Livros},
	{"Design Patterns GoF", 99.90, 30, Livros},
	{"Estruturas de Dados em C", 69.90, 35, Livros},
	{"Python para Análise de Dados", 89.90, 28, Livros},

	{"LEGO Star Wars", 299.90, 20, Brinquedos},
	{"Boneca Barbie", 89.90, 45, Brinquedos},
	{"Carrinho Hot Wheels Kit 5", 49.90, 60, Brinquedos},
	{"Quebra-Cabeça 1000 peças", 59.90, 35, Brinquedos},

	{"Perfume Importado 100ml", 249.90, 40, Beleza},
	{"Kit Maquiagem Completo", 179.90, 30, Beleza},
	{"Creme Hidratante Facial", 89.90, 55, Beleza},
	{"Shampoo e Condicionador Kit", 69.90, 70, Beleza},

	{"Bola de Futebol Nike", 149.90, 40, Esportes},
	{"Raquete de Tênis Wilson", 399.90, 15, Esportes},
	{"Bicicleta Mountain Bike", 1899.90, 8, Esportes},
	{"Halteres 5kg (par)", 89.90, 50, Esportes},
	{"Tapete de Yoga", 79.90, 45, Esportes},

	{"Mochila Executiva", 199.90, 35, Outros},
	{"Garrafa Térmica 1L", 69.90, 60, Outros},
	{"Guarda-Chuva Automático", 49.90, 80, Outros},
	{"Relógio Digital Casio", 299.90, 25, Outros},
}

// SampleFirstCode is the code given to the first sample product; the rest
// follow consecutively.
const SampleFirstCode = 1001

// SampleProducts returns a fresh copy of the demonstration catalog.
func SampleProducts() []*Product {
	products := make([]*Product, len(sampleEntries))
	for i, e := range sampleEntries {
		products[i] = &Product{
			Code:       SampleFirstCode + int64(i),
			Name:       e.name,
			Price:      e.price,
			Quantity:   e.quantity,
			Categories: []Category{e.category},
		}
	}
	return products
}
